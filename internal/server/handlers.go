// Package server exposes the grid plugins over HTTP: plugin discovery,
// config schemas, admin forms, live previews and visibility class lookup.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	theme "github.com/goliatone/go-theme"
	"github.com/google/uuid"

	"github.com/goliatone/go-frontend/pkg/device"
	"github.com/goliatone/go-frontend/pkg/fieldset"
	"github.com/goliatone/go-frontend/pkg/form"
	"github.com/goliatone/go-frontend/pkg/plugin"
	"github.com/goliatone/go-frontend/pkg/render"
	"github.com/goliatone/go-frontend/pkg/responsive"
	"github.com/goliatone/go-frontend/pkg/schema"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	plugins  *plugin.Registry
	renderer *render.Renderer
	scale    device.Scale
	tokens   map[string]string
	theme    *theme.RendererConfig
	newID    func() string
	logger   *slog.Logger
}

// Option configures Handlers.
type Option func(*Handlers)

// WithScale sets the breakpoint scale used by the visibility endpoint.
func WithScale(scale device.Scale) Option {
	return func(h *Handlers) {
		if scale.Len() > 0 {
			h.scale = scale
		}
	}
}

// WithDisplayTokens sets per-UI-item display modes for the visibility
// endpoint.
func WithDisplayTokens(tokens map[string]string) Option {
	return func(h *Handlers) {
		h.tokens = tokens
	}
}

// WithTheme renders previews and forms with cfg.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(h *Handlers) {
		h.theme = cfg
	}
}

// WithIDSource overrides how preview items are identified.
func WithIDSource(fn func() string) Option {
	return func(h *Handlers) {
		if fn != nil {
			h.newID = fn
		}
	}
}

// New creates a new Handlers instance.
func New(plugins *plugin.Registry, renderer *render.Renderer, logger *slog.Logger, options ...Option) *Handlers {
	h := &Handlers{
		plugins:  plugins,
		renderer: renderer,
		scale:    device.DefaultScale(),
		newID:    uuid.NewString,
		logger:   logger,
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

type pluginSummary struct {
	Name      string              `json:"name"`
	Template  string              `json:"template"`
	Fields    []form.Field        `json:"fields"`
	Fieldsets []fieldset.Fieldset `json:"fieldsets"`
}

// ListPlugins describes every registered plugin.
func (h *Handlers) ListPlugins(w http.ResponseWriter, _ *http.Request) {
	names := h.plugins.List()
	out := make([]pluginSummary, 0, len(names))
	for _, name := range names {
		p := h.plugins.MustGet(name)
		out = append(out, pluginSummary{
			Name:      p.Name(),
			Template:  p.Template(),
			Fields:    p.Form().Fields,
			Fieldsets: p.Fieldsets(),
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// PluginSchema returns the OpenAPI schema of a plugin's config.
func (h *Handlers) PluginSchema(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, schema.FromForm(p.Form()))
}

// PluginForm renders the admin form for a new item.
func (h *Handlers) PluginForm(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.renderForm(w, r, p, nil, http.StatusOK, render.RenderOptions{})
}

// Preview cleans a submitted form, saves it onto a fresh item and renders
// the result. Invalid submissions re-render the form with errors and 422.
// With ?format=json the saved item and its HTML are returned as JSON.
func (h *Handlers) Preview(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeBodyError(w, err, "invalid form body")
		return
	}

	item := &plugin.Item{ID: h.newID(), UIItem: p.Name()}
	if _, err := plugin.Save(r.Context(), p, item, r.PostForm); err != nil {
		var errs form.Errors
		if errors.As(err, &errs) {
			values := make(map[string]any, len(r.PostForm))
			for key, submitted := range r.PostForm {
				if field, ok := p.Form().Field(key); ok && field.Kind == form.KindMultiChoice {
					values[key] = submitted
					continue
				}
				values[key] = r.PostForm.Get(key)
			}
			h.renderForm(w, r, p, nil, http.StatusUnprocessableEntity, render.RenderOptions{Errors: errs, Values: values})
			return
		}
		h.logger.Error("save preview", "plugin", p.Name(), "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to save item")
		return
	}

	html, err := h.renderer.RenderItem(r.Context(), item, render.RenderOptions{Theme: h.theme})
	if err != nil {
		h.logger.Error("render preview", "plugin", p.Name(), "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to render item")
		return
	}

	if r.URL.Query().Get("format") == "json" {
		h.writeJSON(w, http.StatusOK, map[string]any{
			"item": item,
			"html": string(html),
		})
		return
	}
	h.writeHTML(w, http.StatusOK, html)
}

// Render renders a JSON item tree posted in the body.
func (h *Handlers) Render(w http.ResponseWriter, r *http.Request) {
	var item plugin.Item
	if !h.decodeJSON(w, r, &item) {
		return
	}
	html, err := h.renderer.RenderItem(r.Context(), &item, render.RenderOptions{Theme: h.theme})
	if err != nil {
		h.logger.Warn("render item", "item", item.ID, "error", err)
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.writeHTML(w, http.StatusOK, html)
}

type visibilityRequest struct {
	VisibleOn []string `json:"visible_on"`
	Token     string   `json:"token,omitempty"`
	UIItem    string   `json:"ui_item,omitempty"`
}

type visibilityResponse struct {
	Classes    []string        `json:"classes"`
	Token      string          `json:"token"`
	Visibility map[string]bool `json:"visibility"`
}

// Visibility computes display classes for a device selection.
func (h *Handlers) Visibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if req.VisibleOn == nil {
		h.writeError(w, http.StatusBadRequest, "visible_on is required")
		return
	}

	token := req.Token
	if token == "" {
		token = responsive.DisplayToken(req.UIItem, responsive.ThemeOverrides(h.themeTokens()), h.tokens)
	}
	classes := responsive.DisplayClasses(h.scale, req.VisibleOn, token)
	h.writeJSON(w, http.StatusOK, visibilityResponse{
		Classes:    append([]string{}, classes...),
		Token:      token,
		Visibility: responsive.Cascade(h.scale, classes, token),
	})
}

func (h *Handlers) themeTokens() map[string]string {
	if h.theme == nil {
		return nil
	}
	return h.theme.Tokens
}

func (h *Handlers) lookup(w http.ResponseWriter, r *http.Request) (plugin.Plugin, bool) {
	name := chi.URLParam(r, "name")
	p, err := h.plugins.Get(name)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "unknown plugin "+name)
		return nil, false
	}
	return p, true
}

func (h *Handlers) renderForm(w http.ResponseWriter, r *http.Request, p plugin.Plugin, item *plugin.Item, status int, opts render.RenderOptions) {
	opts.Theme = h.theme
	opts.Action = "/plugins/" + p.Name() + "/preview"
	html, err := h.renderer.RenderForm(r.Context(), p.Name(), item, opts)
	if err != nil {
		h.logger.Error("render form", "plugin", p.Name(), "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to render form")
		return
	}
	h.writeHTML(w, status, html)
}

// decodeJSON reads the request body into dst and writes the error response
// when it cannot.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeBodyError(w, err, "invalid JSON body")
		return false
	}
	return true
}

func (h *Handlers) writeBodyError(w http.ResponseWriter, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	h.writeError(w, http.StatusBadRequest, message)
}

func (h *Handlers) writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", h.renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
