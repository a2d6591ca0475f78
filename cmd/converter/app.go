package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"currencyconverter/internal/config"
	"currencyconverter/internal/provider"
	"currencyconverter/internal/service"
)

// App holds the dependencies of the HTTP API and manages its lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	converter  service.ConverterService
	httpServer *http.Server
}

// NewApp wires the converter and the HTTP server.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) *App {
	app := &App{
		cfg:       cfg,
		logger:    logger,
		converter: newConverter(cfg, logger),
	}
	app.initHTTP()
	return app
}

func newConverter(cfg *config.Config, logger *zap.SugaredLogger) *service.Converter {
	p := provider.NewExchangeRateAPIProvider(
		cfg.ExchangeRateAPI.BaseURL,
		cfg.ExchangeRateAPI.APIKey,
		cfg.ExchangeRateAPI.TimeoutSec,
	)
	return service.NewConverter(p, logger)
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "addr", app.httpServer.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Triggered by signal or by the server failing to start.
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown stops accepting requests and drains in-flight conversions.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
