// Package plugin defines the contract page-builder plugins implement, the item
// model they render, and a registry to look them up by name.
package plugin

import (
	"context"

	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
)

// Data is the template context a plugin hands to the renderer.
type Data map[string]any

// Plugin renders one kind of item and declares the form editing it.
type Plugin interface {
	// Name is the UI item type, e.g. "GridRow".
	Name() string
	// Template names the template used to render items of this type.
	Template() string
	Form() *form.Form
	Fieldsets() []fieldset.Fieldset
	// Render adds classes/styles to item and returns the template context.
	// item is a private clone; data carries renderer-level values such as
	// theme tokens.
	Render(ctx context.Context, item *Item, data Data) (Data, error)
}

// Saver is implemented by plugins that derive extra items after a save, such
// as a row creating its columns.
type Saver interface {
	AfterSave(ctx context.Context, item *Item) ([]*Item, error)
}

// Base carries the common parts of a plugin declaration. Plugins embed it
// and implement Render.
type Base struct {
	PluginName     string
	PluginTemplate string
	PluginForm     *form.Form
	PluginSets     []fieldset.Fieldset
}

func (b Base) Name() string     { return b.PluginName }
func (b Base) Template() string { return b.PluginTemplate }
func (b Base) Form() *form.Form { return b.PluginForm }

// Fieldsets falls back to a single block listing every field.
func (b Base) Fieldsets() []fieldset.Fieldset {
	if len(b.PluginSets) == 0 {
		return fieldset.Default(b.PluginForm)
	}
	out := make([]fieldset.Fieldset, len(b.PluginSets))
	for i, set := range b.PluginSets {
		out[i] = set.Clone()
	}
	return out
}

// Render returns data unchanged; plugins without classes can rely on it.
func (b Base) Render(_ context.Context, _ *Item, data Data) (Data, error) {
	return data, nil
}
