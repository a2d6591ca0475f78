// Package provider implements the exchange rate provider client.
package provider

import (
	"context"
	"errors"
)

// RatesProvider defines an interface for fetching exchange rates from external sources.
type RatesProvider interface {
	GetRates(ctx context.Context, base string) (*RateTable, error)
	GetRate(ctx context.Context, base, quote string) (rate float64, lastUpdated string, err error)
}

var (
	// ErrRequestFailed wraps transport failures (DNS, connect, timeout, cancellation).
	ErrRequestFailed = errors.New("exchange rate request failed")
	// ErrUnexpectedStatus is returned for non-200 responses.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrMalformedResponse is returned when the body is not the expected JSON document.
	ErrMalformedResponse = errors.New("malformed exchange rate response")
	// ErrAPIError is returned when the API reports result=error.
	ErrAPIError = errors.New("exchange rate API error")
	// ErrRateNotFound is returned when the quote currency is absent from the rate table.
	ErrRateNotFound = errors.New("rate not found")
	// ErrInvalidRate is returned for zero, negative or non-finite rates.
	ErrInvalidRate = errors.New("invalid rate")
)

// RateTable is the set of rates quoted against a single base currency,
// as returned by one API call. It is only valid for Base.
type RateTable struct {
	Base        string
	Rates       map[string]float64
	LastUpdated string
}

// Rate looks up the multiplier for quote.
func (t *RateTable) Rate(quote string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	r, ok := t.Rates[quote]
	return r, ok
}
