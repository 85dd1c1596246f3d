// Package render turns item trees into HTML using each plugin's template and
// renders the admin form a plugin declares.
package render

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
	rendertemplate "github.com/goliatone/go-frontend/pkg/render/template"
	"github.com/goliatone/go-frontend/pkg/render/template/gotemplate"
	"github.com/goliatone/go-frontend/pkg/responsive"
	"github.com/goliatone/go-frontend/pkg/widgets"
)

// ThemePartialPrefix prefixes theme partials that replace a plugin template.
const ThemePartialPrefix = "plugins."

var tagPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	widgets          *widgets.Registry
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithWidgets overrides the widget registry used by RenderForm.
func WithWidgets(reg *widgets.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.widgets = reg
		}
	}
}

// Renderer renders items and plugin forms.
type Renderer struct {
	plugins   *plugin.Registry
	templates rendertemplate.TemplateRenderer
	widgets   *widgets.Registry
}

// New constructs a renderer resolving item types through plugins.
func New(plugins *plugin.Registry, options ...Option) (*Renderer, error) {
	if plugins == nil {
		return nil, fmt.Errorf("render: plugin registry is required")
	}
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.widgets == nil {
		cfg.widgets = widgets.NewRegistry()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("render: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		plugins:   plugins,
		templates: templates,
		widgets:   cfg.widgets,
	}, nil
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// RenderItem renders item and its descendants. The stored item is never
// modified; classes are computed on a clone.
func (r *Renderer) RenderItem(ctx context.Context, item *plugin.Item, opts RenderOptions) ([]byte, error) {
	if item == nil {
		return nil, fmt.Errorf("render: item is nil")
	}
	out, err := r.renderItem(ctx, item.Clone(), opts)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// RenderItems renders sibling items in position order.
func (r *Renderer) RenderItems(ctx context.Context, items []*plugin.Item, opts RenderOptions) ([]byte, error) {
	var b strings.Builder
	for _, item := range ordered(items) {
		out, err := r.renderItem(ctx, item.Clone(), opts)
		if err != nil {
			return nil, err
		}
		b.WriteString(out)
	}
	return []byte(b.String()), nil
}

func (r *Renderer) renderItem(ctx context.Context, item *plugin.Item, opts RenderOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := r.plugins.Get(item.UIItem)
	if err != nil {
		return "", fmt.Errorf("render: item %q: %w", item.ID, err)
	}

	var children strings.Builder
	for _, child := range ordered(item.Children) {
		out, err := r.renderItem(ctx, child, opts)
		if err != nil {
			return "", err
		}
		children.WriteString(out)
	}

	data := plugin.Data{}
	if opts.Theme != nil && len(opts.Theme.Tokens) > 0 {
		data[responsive.DataThemeTokens] = copyStringMap(opts.Theme.Tokens)
	}
	data, err = p.Render(ctx, item, data)
	if err != nil {
		return "", fmt.Errorf("render: %s %q: %w", p.Name(), item.ID, err)
	}

	view := make(map[string]any, len(data)+5)
	for key, value := range data {
		view[key] = value
	}
	delete(view, responsive.DataThemeTokens)
	view["item"] = map[string]any{
		"id":      item.ID,
		"ui_item": item.UIItem,
	}
	view["tag"] = safeTag(item.Tag())
	view["attributes"] = safeAttributes(item.Attributes())
	view["children"] = children.String()
	view["theme"] = buildThemeContext(opts.Theme)

	out, err := r.templates.RenderTemplate(r.templateFor(p, opts.Theme), view)
	if err != nil {
		return "", fmt.Errorf("render: %s %q: %w", p.Name(), item.ID, err)
	}
	return strings.TrimSpace(out), nil
}

func (r *Renderer) templateFor(p plugin.Plugin, cfg *theme.RendererConfig) string {
	if cfg != nil {
		if partial := strings.TrimSpace(cfg.Partials[ThemePartialPrefix+p.Template()]); partial != "" {
			return partial
		}
	}
	return PluginTemplatePath(p.Template())
}

// RenderForm renders the admin form of the named plugin, filled from item.
// item may be nil when creating a new item.
func (r *Renderer) RenderForm(ctx context.Context, name string, item *plugin.Item, opts RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := r.plugins.Get(name)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	view := buildFormView(p, item, r.widgets, opts)
	out, err := r.templates.RenderTemplate(FormTemplate, map[string]any{
		"form":  view,
		"theme": buildThemeContext(opts.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("render: form %s: %w", name, err)
	}
	return []byte(out), nil
}

func safeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if !tagPattern.MatchString(tag) {
		return plugin.DefaultTagType
	}
	return tag
}

func safeAttributes(attrs []plugin.Attribute) []plugin.Attribute {
	out := make([]plugin.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		if !form.ValidAttributeName(attr.Name) {
			continue
		}
		out = append(out, attr)
	}
	return out
}

func ordered(items []*plugin.Item) []*plugin.Item {
	out := make([]*plugin.Item, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}
