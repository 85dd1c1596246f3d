package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router wires the handlers and middleware.
func Router(h *Handlers, logger *slog.Logger, maxBody int64) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(logger))
	r.Use(chimiddleware.Recoverer)
	if maxBody > 0 {
		r.Use(chimiddleware.RequestSize(maxBody))
	}

	r.Get("/health", h.Health)

	r.Route("/plugins", func(r chi.Router) {
		r.Get("/", h.ListPlugins)
		r.Get("/{name}/schema", h.PluginSchema)
		r.Get("/{name}/form", h.PluginForm)
		r.Post("/{name}/preview", h.Preview)
	})

	r.Post("/render", h.Render)
	r.Post("/visibility", h.Visibility)

	return r
}
