// Package gotemplate implements template.TemplateRenderer on top of pongo2,
// whose Django-style syntax matches the templates page-builder plugins ship.
package gotemplate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-frontend/pkg/render/template"
)

const defaultExtension = ".tmpl"

type options struct {
	dir     string
	files   fs.FS
	ext     string
	globals map[string]any
}

// Option configures an Engine.
type Option func(*options)

// WithBaseDir loads templates from a directory on disk. It is searched
// before any fs.FS given with WithFS.
func WithBaseDir(dir string) Option {
	return func(o *options) { o.dir = strings.TrimSpace(dir) }
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(o *options) { o.files = files }
}

// WithExtension sets the suffix appended to template names that lack it.
func WithExtension(ext string) Option {
	return func(o *options) {
		ext = strings.TrimSpace(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if ext != "" {
			o.ext = ext
		}
	}
}

// WithGlobalData makes data visible to every template. Later calls add to
// earlier ones.
func WithGlobalData(data map[string]any) Option {
	return func(o *options) {
		if o.globals == nil {
			o.globals = map[string]any{}
		}
		for key, value := range data {
			o.globals[key] = value
		}
	}
}

// Engine renders pongo2 templates. Parsed files are cached by path and the
// engine is safe for concurrent use.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

var (
	_ template.TemplateRenderer = (*Engine)(nil)
	_ template.FilterRegistrar  = (*Engine)(nil)
)

// New builds an engine. At least one of WithBaseDir or WithFS is required.
func New(opts ...Option) (*Engine, error) {
	o := options{ext: defaultExtension}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var loaders []pongo2.TemplateLoader
	if o.dir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(o.dir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: template dir %q: %w", o.dir, err)
		}
		loaders = append(loaders, local)
	}
	if o.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(o.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("gotemplate: no template source configured")
	}

	set := pongo2.NewSet("frontend", loaders...)
	if len(o.globals) > 0 {
		globals, err := toContext(o.globals)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: global data: %w", err)
		}
		if set.Globals == nil {
			set.Globals = pongo2.Context{}
		}
		set.Globals.Update(globals)
	}

	ensureBuiltinFilters()
	return &Engine{set: set, ext: o.ext, cache: map[string]*pongo2.Template{}}, nil
}

// RenderTemplate executes the template called name, adding the engine's
// extension when name has none.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	return run(tmpl, data, out)
}

// RenderString parses content and executes it. The result is not cached.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse inline template: %w", err)
	}
	return run(tmpl, data, out)
}

// RegisterFilter adds fn under name. pongo2 keeps filters in a process-wide
// table, so registering a name twice fails.
func (e *Engine) RegisterFilter(name string, fn template.Filter) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter needs a name and a function")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already registered", name)
	}
	return pongo2.RegisterFilter(name, func(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}

func run(tmpl *pongo2.Template, data any, out []io.Writer) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: template data: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("gotemplate: execute: %w", err)
	}
	for _, w := range out {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// toContext flattens data into plain maps and slices through JSON, so
// templates see struct fields under their JSON names. Numbers are kept as
// json.Number to print the way they were written.
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var ctx map[string]any
	if err := dec.Decode(&ctx); err != nil {
		return nil, fmt.Errorf("data must encode to a JSON object, got %T", data)
	}
	if ctx == nil {
		ctx = map[string]any{}
	}
	return pongo2.Context(ctx), nil
}

var builtinFilters sync.Once

func ensureBuiltinFilters() {
	builtinFilters.Do(func() {
		if !pongo2.FilterExists("html_attrs") {
			_ = pongo2.RegisterFilter("html_attrs", htmlAttrs)
		}
	})
}

// htmlAttrs renders a list of {name, value} objects as escaped attributes,
// each with a leading space: ` class="row" id="hero"`.
func htmlAttrs(in, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	list, _ := in.Interface().([]any)
	var b strings.Builder
	for _, entry := range list {
		attr, _ := entry.(map[string]any)
		name, _ := attr["name"].(string)
		if name == "" {
			continue
		}
		value, _ := attr["value"].(string)
		fmt.Fprintf(&b, ` %s="%s"`, html.EscapeString(name), html.EscapeString(value))
	}
	return pongo2.AsSafeValue(b.String()), nil
}
