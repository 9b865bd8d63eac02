package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/atlasbanco/website/internal/config"
	"github.com/atlasbanco/website/internal/logger"
	"github.com/atlasbanco/website/internal/metrics"
	"github.com/atlasbanco/website/internal/version"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter, NewHTTPServer),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config  *config.Config
	Log     *slog.Logger
	Metrics *metrics.Metrics
}

// NewRouter creates the chi router with the middleware stack. Routes are
// added afterwards by the handlers and metrics modules.
func NewRouter(p RouterParams) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(p.Log.With(logger.Scope("http"))))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	if p.Config.RateLimit.IsEnabled() {
		limiter := rate.NewLimiter(rate.Limit(p.Config.RateLimit.RPS), p.Config.RateLimit.Burst)
		r.Use(RateLimit(limiter, p.Metrics, p.Log))
	}

	return r
}

func NewHTTPServer(cfg *config.Config, r *chi.Mux) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, server *http.Server, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", server.Addr, err)
			}

			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("environment", cfg.Environment),
				slog.String("version", version.Current().String()),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	})
}
