package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/atlasbanco/website/internal/config"
	"github.com/atlasbanco/website/internal/handlers"
	"github.com/atlasbanco/website/internal/logger"
	"github.com/atlasbanco/website/internal/metrics"
	"github.com/atlasbanco/website/internal/server"
)

func main() {
	// Load won't overwrite existing vars, Overload will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		logger.Module,
		config.Module,
		metrics.Module,
		server.Module,
		handlers.Module,
	)
}
