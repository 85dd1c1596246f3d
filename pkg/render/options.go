package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-frontend/pkg/form"
)

// RenderOptions describe per-request data that shapes output without touching
// stored items.
type RenderOptions struct {
	// Theme exposes tokens and CSS variables to templates. "display.<UIItem>"
	// tokens override the display mode used for visibility classes, and
	// Partials can replace a plugin template ("plugins.grid_row": "...").
	Theme *theme.RendererConfig
	// Errors surfaces validation feedback keyed by field name; the "" key
	// holds form-level messages.
	Errors form.Errors
	// Values overrides the initial form values, typically the raw values of a
	// rejected submission.
	Values map[string]any
	// Action sets the form action URL.
	Action string
	// Hidden adds hidden inputs such as CSRF tokens to rendered forms.
	Hidden []HiddenField
}
