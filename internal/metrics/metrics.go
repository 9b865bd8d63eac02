// Package metrics exposes prometheus collectors for page rendering.
package metrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/atlasbanco/website/internal/config"
)

var Module = fx.Module("metrics",
	fx.Provide(func() *Metrics { return New(prometheus.NewRegistry()) }),
	fx.Invoke(RegisterRoutes),
)

// Metrics holds the website collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	PageRenders    *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
	RateLimited    prometheus.Counter
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "website_page_renders_total",
			Help: "Total number of rendered pages",
		}, []string{"page", "status"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "website_page_render_seconds",
			Help:    "Time spent rendering a page into the response",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"page"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "website_requests_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
	}

	reg.MustRegister(
		m.PageRenders,
		m.RenderDuration,
		m.RateLimited,
		prometheus.NewGoCollector(),
	)
	return m
}

// ObserveRender records one rendered page.
func (m *Metrics) ObserveRender(page string, status int, started time.Time) {
	m.PageRenders.WithLabelValues(page, http.StatusText(status)).Inc()
	m.RenderDuration.WithLabelValues(page).Observe(time.Since(started).Seconds())
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RegisterRoutes mounts /metrics when enabled.
func RegisterRoutes(r *chi.Mux, m *Metrics, cfg *config.Config) {
	if !cfg.MetricsEnabled {
		return
	}
	r.Method(http.MethodGet, "/metrics", m.Handler())
}
