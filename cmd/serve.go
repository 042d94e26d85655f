package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"passgen/internal/api"
	"passgen/internal/api/handler/v1handler"
	"passgen/internal/config"
	"passgen/internal/generator"
	"passgen/pkg/logger"
	"passgen/pkg/metrics"
)

func setupServer(ctx context.Context, cfg *config.Config, svc generator.Service) func(ctx context.Context) {
	opts, err := api.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not create webserver options", zap.Error(err))
	}

	server, err := api.NewServer(api.Deps{
		Deps:     v1handler.Deps{Generator: svc},
		Gatherer: prometheus.DefaultGatherer,
	}, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", opts.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand that exposes the generator
// over HTTP until interrupted.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			meterProvider, err := metrics.NewPrometheusProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			instruments, err := metrics.NewInstruments(meterProvider)
			if err != nil {
				logger.Fatal(ctx, "could not create metric instruments", zap.Error(err))
			}

			svc, closeSvc, err := newService(ctx, cfg, instruments)
			if err != nil {
				logger.Fatal(ctx, "could not create generator service", zap.Error(err))
			}
			defer closeSvc()

			stopWebserver := setupServer(ctx, cfg, svc)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
