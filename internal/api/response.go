// Package api implements HTTP handlers for the currency converter.
package api

import (
	"encoding/json"
	"net/http"

	"currencyconverter/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Error fetching exchange rate: rate not found: GBP/XYZ"`
}

// ConversionResponse represents the result of a conversion
type ConversionResponse struct {
	Direction       string  `json:"direction" example:"forward"`
	Source          string  `json:"source" example:"GBP"`
	Target          string  `json:"target" example:"CNY"`
	Amount          float64 `json:"amount" example:"10"`
	ConvertedAmount float64 `json:"converted_amount" example:"91"`
	Rate            float64 `json:"rate" example:"9.1"`
	LastUpdated     string  `json:"last_updated" example:"Mon, 01 Jan 2024 00:00:01 +0000"`
	Message         string  `json:"message" example:"10.00 £GBP is 91.00 ¥CNY (Rate as of Mon, 01 Jan 2024 00:00:01 +0000)"`
}

// CurrencyResponse represents a currency and its display symbol
type CurrencyResponse struct {
	Code   string `json:"code" example:"GBP"`
	Symbol string `json:"symbol" example:"£"`
}

func conversionResponse(c *service.Conversion) ConversionResponse {
	return ConversionResponse{
		Direction:       string(c.Direction),
		Source:          c.Source,
		Target:          c.Target,
		Amount:          c.Amount,
		ConvertedAmount: c.Converted,
		Rate:            c.Rate,
		LastUpdated:     c.LastUpdated,
		Message:         service.FormatConversion(c),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
