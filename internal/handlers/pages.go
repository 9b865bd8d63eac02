package handlers

import (
	"log/slog"
	"net/http"
	"time"

	g "maragu.dev/gomponents"

	"github.com/atlasbanco/website/internal/components"
	"github.com/atlasbanco/website/internal/logger"
	"github.com/atlasbanco/website/internal/metrics"
)

// Handler serves the website's pages.
type Handler struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	startAt time.Time
}

func NewHandler(log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		log:     log.With(logger.Scope("handlers")),
		metrics: m,
		startAt: time.Now(),
	}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	page := components.Layout(
		components.PageConfig{
			Title:       components.SiteTitle,
			Description: components.SiteDescription,
		},
		components.Home(),
	)

	h.render(w, r, "home", http.StatusOK, page)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	page := components.Layout(
		components.PageConfig{Title: components.NotFoundTitle},
		components.NotFound(),
	)

	h.render(w, r, "not_found", http.StatusNotFound, page)
}

// render writes page with status. Once the header is out a render error can
// only be logged.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, page g.Node) {
	started := time.Now()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := page.Render(w); err != nil {
		h.log.Error("page render failed",
			slog.String("page", name),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
	}

	h.metrics.ObserveRender(name, status, started)
}
