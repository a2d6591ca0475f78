// Package service implements currency conversion on top of a rates provider.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"currencyconverter/internal/provider"
)

// ErrEmptyCurrency is returned when a currency code is blank.
var ErrEmptyCurrency = errors.New("currency code is required")

// Direction tells how a Conversion applied its rate.
type Direction string

const (
	// Forward multiplies the amount by the from->to rate.
	Forward Direction = "forward"
	// Reverse divides the amount by the from->to rate.
	Reverse Direction = "reverse"
)

// ConverterService defines the conversion operations used by the CLI and HTTP layers.
type ConverterService interface {
	Convert(ctx context.Context, amount float64, from, to string) (*Conversion, error)
	ReverseConvert(ctx context.Context, amount float64, from, to string) (*Conversion, error)
	Currencies() []Currency
}

// Conversion is the result of a single conversion.
// Amount is expressed in Source and Converted in Target.
type Conversion struct {
	Direction   Direction
	Source      string
	Target      string
	Amount      float64
	Converted   float64
	Rate        float64 // always the from->to rate as quoted by the provider
	LastUpdated string
}

// Converter performs conversions with a fresh rate fetched per call.
type Converter struct {
	provider provider.RatesProvider
	log      *zap.SugaredLogger
}

// NewConverter creates a new Converter.
func NewConverter(prov provider.RatesProvider, logger *zap.SugaredLogger) *Converter {
	return &Converter{
		provider: prov,
		log:      logger,
	}
}

var _ ConverterService = (*Converter)(nil)

// Convert returns amount of from expressed in to: amount * rate(from->to).
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (*Conversion, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}

	rate, lastUpdated, err := c.fetchRate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &Conversion{
		Direction:   Forward,
		Source:      from,
		Target:      to,
		Amount:      amount,
		Converted:   amount * rate,
		Rate:        rate,
		LastUpdated: lastUpdated,
	}, nil
}

// ReverseConvert divides amount by the same from->to rate Convert uses.
// The amount is therefore read as a quantity of to, and the result is a
// quantity of from.
func (c *Converter) ReverseConvert(ctx context.Context, amount float64, from, to string) (*Conversion, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}

	rate, lastUpdated, err := c.fetchRate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &Conversion{
		Direction:   Reverse,
		Source:      to,
		Target:      from,
		Amount:      amount,
		Converted:   amount / rate,
		Rate:        rate,
		LastUpdated: lastUpdated,
	}, nil
}

// Currencies lists the currencies with a known display symbol.
func (c *Converter) Currencies() []Currency {
	return Currencies()
}

func (c *Converter) fetchRate(ctx context.Context, from, to string) (float64, string, error) {
	rate, lastUpdated, err := c.provider.GetRate(ctx, from, to)
	if err != nil {
		c.log.Debugw("Rate fetch failed", "from", from, "to", to, "error", err)
		return 0, "", err
	}
	c.log.Debugw("Rate fetched", "from", from, "to", to, "rate", rate, "last_updated", lastUpdated)
	return rate, lastUpdated, nil
}

func normalizePair(from, to string) (normFrom, normTo string, err error) {
	normFrom = strings.ToUpper(strings.TrimSpace(from))
	normTo = strings.ToUpper(strings.TrimSpace(to))
	if normFrom == "" || normTo == "" {
		return "", "", ErrEmptyCurrency
	}
	return normFrom, normTo, nil
}
