// Package frontend wires the grid plugins, responsive visibility and the
// renderer into ready-to-use constructors.
package frontend

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/grid"
	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/render"
	"github.com/goliatone/go-frontend/pkg/responsive"
	"github.com/goliatone/go-frontend/pkg/settings"
)

// Item aliases plugin.Item for callers that only render.
type Item = plugin.Item

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// NewRegistry returns a plugin registry with the grid plugins registered.
func NewRegistry(options ...grid.Option) (*plugin.Registry, error) {
	reg := plugin.NewRegistry()
	if err := grid.Register(reg, options...); err != nil {
		return nil, err
	}
	return reg, nil
}

// NewRegistryFromSettings registers the grid plugins configured by s.
func NewRegistryFromSettings(s settings.Settings) (*plugin.Registry, error) {
	options, err := s.GridOptions()
	if err != nil {
		return nil, err
	}
	return NewRegistry(options...)
}

// NewRenderer returns a renderer over a default grid registry.
func NewRenderer(options ...render.Option) (*render.Renderer, error) {
	reg, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	return render.New(reg, options...)
}

// DisplayClasses computes the visibility classes for visibleOn on the
// default breakpoint scale. An empty token means "block".
func DisplayClasses(visibleOn []string, token string) []string {
	return responsive.DisplayClasses(device.DefaultScale(), visibleOn, token)
}

// RenderHTML renders an item tree with the default grid plugins.
func RenderHTML(ctx context.Context, item *Item, opts RenderOptions) ([]byte, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return r.RenderItem(ctx, item, opts)
}

// EmbeddedTemplates exposes the built-in templates so callers can reuse or
// extend them.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
