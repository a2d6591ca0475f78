package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"
)

var _ RatesProvider = (*ExchangeRateAPIProvider)(nil)

// DefaultExchangeRateAPIBaseURL is the v6 endpoint root of exchangerate-api.com.
const DefaultExchangeRateAPIBaseURL = "https://v6.exchangerate-api.com/v6"

// ExchangeRateAPIProvider fetches rates from the exchangerate-api.com v6 API.
type ExchangeRateAPIProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewExchangeRateAPIProvider creates a new ExchangeRateAPIProvider. A zero
// timeoutSec leaves the client without a timeout; requests then rely on ctx.
func NewExchangeRateAPIProvider(baseURL, apiKey string, timeoutSec int) *ExchangeRateAPIProvider {
	if baseURL == "" {
		baseURL = DefaultExchangeRateAPIBaseURL
	}
	return &ExchangeRateAPIProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// latestURL forms <base>/<key>/latest/<currency>.
func (p *ExchangeRateAPIProvider) latestURL(base string) string {
	return fmt.Sprintf("%s/%s/latest/%s", p.baseURL, url.PathEscape(p.apiKey), url.PathEscape(base))
}

// exchangerate-api.com v6 "latest" response structure
type latestResponse struct {
	Result            string             `json:"result"`
	ErrorType         string             `json:"error-type"`
	BaseCode          string             `json:"base_code"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
	ConversionRates   map[string]float64 `json:"conversion_rates"`
}

// GetRates fetches the full rate table for base.
func (p *ExchangeRateAPIProvider) GetRates(ctx context.Context, base string) (*RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.latestURL(base), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrRequestFailed, stripURL(err))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, stripURL(err))
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	var result latestResponse
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && result.ErrorType != "" {
			return nil, fmt.Errorf("%w: status %d: %s", ErrAPIError, resp.StatusCode, result.ErrorType)
		}
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, decodeErr)
	}
	if result.Result == "error" {
		return nil, fmt.Errorf("%w: %s", ErrAPIError, result.ErrorType)
	}
	if result.ConversionRates == nil {
		return nil, fmt.Errorf("%w: missing conversion_rates", ErrMalformedResponse)
	}

	return &RateTable{
		Base:        base,
		Rates:       result.ConversionRates,
		LastUpdated: result.TimeLastUpdateUTC,
	}, nil
}

// stripURL drops the request URL from a *url.Error, since it carries the API key.
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

// GetRate fetches the base table and returns the rate for quote together
// with the provider's last-update timestamp.
func (p *ExchangeRateAPIProvider) GetRate(ctx context.Context, base, quote string) (float64, string, error) {
	table, err := p.GetRates(ctx, base)
	if err != nil {
		return 0, "", err
	}

	rate, ok := table.Rate(quote)
	if !ok {
		return 0, "", fmt.Errorf("%w: %s/%s", ErrRateNotFound, base, quote)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, "", fmt.Errorf("%w: %s/%s = %v", ErrInvalidRate, base, quote, rate)
	}
	return rate, table.LastUpdated, nil
}
