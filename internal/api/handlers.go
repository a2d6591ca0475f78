package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"currencyconverter/internal/api/middleware"
	"currencyconverter/internal/provider"
	"currencyconverter/internal/service"
)

type convertFunc func(ctx context.Context, amount float64, from, to string) (*service.Conversion, error)

// HandleConvert godoc
// @Summary Convert an amount
// @Description Fetches the latest from->to rate and returns amount * rate. Every call queries the provider.
// @Tags conversions
// @Produce json
// @Param amount query number true "Amount in the from currency"
// @Param from query string true "Base currency code" example(GBP)
// @Param to query string true "Target currency code" example(CNY)
// @Success 200 {object} ConversionResponse "Conversion result"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 404 {object} ErrorResponse "Target currency not in rate table"
// @Failure 502 {object} ErrorResponse "Rate provider failure"
// @Router /convert [get]
func HandleConvert(svc service.ConverterService, logger *zap.SugaredLogger) http.HandlerFunc {
	return handleConversion(svc.Convert, logger)
}

// HandleReverseConvert godoc
// @Summary Reverse-convert an amount
// @Description Fetches the latest from->to rate and returns amount / rate, i.e. the amount of from needed to obtain amount of to.
// @Tags conversions
// @Produce json
// @Param amount query number true "Amount in the to currency"
// @Param from query string true "Base currency code" example(GBP)
// @Param to query string true "Target currency code" example(CNY)
// @Success 200 {object} ConversionResponse "Conversion result"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 404 {object} ErrorResponse "Target currency not in rate table"
// @Failure 502 {object} ErrorResponse "Rate provider failure"
// @Router /reverse-convert [get]
func HandleReverseConvert(svc service.ConverterService, logger *zap.SugaredLogger) http.HandlerFunc {
	return handleConversion(svc.ReverseConvert, logger)
}

func handleConversion(convert convertFunc, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, from, to, err := parseConversionQuery(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		c, err := convert(r.Context(), amount, from, to)
		if err != nil {
			logger.Warnw("Conversion failed",
				"request_id", middleware.RequestIDFromContext(r.Context()),
				"from", from, "to", to, "error", err)
			writeJSON(w, conversionErrorStatus(err), ErrorResponse{Error: "Error fetching exchange rate: " + err.Error()})
			return
		}
		// JSON cannot carry Inf or NaN
		if !isFinite(c.Converted) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "converted amount is out of range"})
			return
		}

		writeJSON(w, http.StatusOK, conversionResponse(c))
	}
}

func parseConversionQuery(r *http.Request) (amount float64, from, to string, err error) {
	q := r.URL.Query()
	rawAmount := strings.TrimSpace(q.Get("amount"))
	from = strings.TrimSpace(q.Get("from"))
	to = strings.TrimSpace(q.Get("to"))

	if rawAmount == "" || from == "" || to == "" {
		return 0, "", "", errors.New("amount, from and to query params are required")
	}
	amount, err = strconv.ParseFloat(rawAmount, 64)
	if err != nil || !isFinite(amount) {
		return 0, "", "", fmt.Errorf("invalid amount %q", rawAmount)
	}
	return amount, from, to, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func conversionErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyCurrency):
		return http.StatusBadRequest
	case errors.Is(err, provider.ErrRateNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// HandleListCurrencies godoc
// @Summary List currencies with a known symbol
// @Description Returns the static currency symbol table. Other codes can still be converted.
// @Tags currencies
// @Produce json
// @Success 200 {array} CurrencyResponse "Currencies sorted by code"
// @Router /currencies [get]
func HandleListCurrencies(svc service.ConverterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currencies := svc.Currencies()
		resp := make([]CurrencyResponse, 0, len(currencies))
		for _, c := range currencies {
			resp = append(resp, CurrencyResponse{Code: c.Code, Symbol: c.Symbol})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleHealthz godoc
// @Summary Health check (liveness)
// @Description Always returns 200 OK if the service is running. Used for liveness probes.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}
