package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"currencyconverter/internal/api"
	"currencyconverter/internal/api/middleware"
)

func (app *App) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(app.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/convert", api.HandleConvert(app.converter, app.logger))
	r.Get("/reverse-convert", api.HandleReverseConvert(app.converter, app.logger))
	r.Get("/currencies", api.HandleListCurrencies(app.converter))
	r.Get("/healthz", api.HandleHealthz())

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}
	return r
}

func (app *App) initHTTP() {
	// WriteTimeout leaves room for a slow provider round trip
	writeTimeout := 15 * time.Second
	if t := time.Duration(app.cfg.ExchangeRateAPI.TimeoutSec) * time.Second; t+5*time.Second > writeTimeout {
		writeTimeout = t + 5*time.Second
	}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           app.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
}
