package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/pokedex-pocket/internal/config"
	"github.com/heartmarshall/pokedex-pocket/internal/transport/rest"
)

// Run loads configuration, serves the HTTP API and blocks until ctx is
// cancelled, then shuts the server down within server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	px, err := NewPokedex(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := px.Close(); err != nil {
			logger.Warn("close cache", slog.String("error", err.Error()))
		}
	}()

	return Serve(ctx, cfg, px, logger)
}

// Serve runs the HTTP server for px until ctx is done.
func Serve(ctx context.Context, cfg *config.Config, px *Pokedex, logger *slog.Logger) error {
	handler := rest.NewRouter(rest.RouterDeps{
		Logger:  logger,
		Pokemon: rest.NewPokemonHandler(px.Service, logger, cfg.Server.MaxBatchIDs, cfg.Server.BatchWorkers),
		Health:  rest.NewHealthHandler(px.Cache, cfg.Cache.BackendName(), BuildVersion()),
		Metrics: px.Metrics.Handler(),
		CORS:    cfg.CORS,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
