package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/atlasbanco/website/static"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// RegisterRoutes registers page, health and static asset routes
func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	r.Get("/robots.txt", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, static.FS, "robots.txt")
	})

	r.Get("/", h.Home)
	r.Get("/health", h.Health)

	r.NotFound(h.NotFound)
}
