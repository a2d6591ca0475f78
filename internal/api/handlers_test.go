package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"currencyconverter/internal/provider"
	"currencyconverter/internal/service"
)

const lastUpdated = "2024-01-01 00:00 UTC"

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestHandleConvert(t *testing.T) {
	nop := zap.NewNop().Sugar()

	t.Run("valid request returns 200", func(t *testing.T) {
		svc := &mockConverterService{
			convertFunc: func(_ context.Context, amount float64, from, to string) (*service.Conversion, error) {
				assert.Equal(t, 10.0, amount)
				assert.Equal(t, "GBP", from)
				assert.Equal(t, "CNY", to)
				return &service.Conversion{
					Direction: service.Forward, Source: "GBP", Target: "CNY",
					Amount: amount, Converted: amount * 9.1, Rate: 9.1, LastUpdated: lastUpdated,
				}, nil
			},
		}

		w := serve(t, HandleConvert(svc, nop), "/convert?amount=10&from=GBP&to=CNY")

		require.Equal(t, http.StatusOK, w.Code)
		var resp ConversionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "forward", resp.Direction)
		assert.InDelta(t, 91.0, resp.ConvertedAmount, 1e-9)
		assert.Equal(t, 9.1, resp.Rate)
		assert.Equal(t, lastUpdated, resp.LastUpdated)
		assert.Equal(t, "10.00 £GBP is 91.00 ¥CNY (Rate as of 2024-01-01 00:00 UTC)", resp.Message)
	})

	t.Run("missing params returns 400", func(t *testing.T) {
		w := serve(t, HandleConvert(&mockConverterService{}, nop), "/convert?amount=10&from=GBP")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "amount, from and to query params are required", decodeError(t, w).Error)
	})

	t.Run("invalid amount returns 400", func(t *testing.T) {
		w := serve(t, HandleConvert(&mockConverterService{}, nop), "/convert?amount=ten&from=GBP&to=CNY")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `invalid amount "ten"`, decodeError(t, w).Error)
	})

	t.Run("non-finite amounts return 400 with a body", func(t *testing.T) {
		svc := &mockConverterService{
			convertFunc: func(_ context.Context, amount float64, from, to string) (*service.Conversion, error) {
				return &service.Conversion{
					Direction: service.Forward, Source: from, Target: to,
					Amount: amount, Converted: amount * 9.1, Rate: 9.1, LastUpdated: lastUpdated,
				}, nil
			},
		}

		tests := []struct {
			amount  string
			wantErr string
		}{
			{"NaN", `invalid amount "NaN"`},
			{"Inf", `invalid amount "Inf"`},
			{"-Infinity", `invalid amount "-Infinity"`},
			{"1e309", `invalid amount "1e309"`},
			{"1e308", "converted amount is out of range"},
		}

		for _, tc := range tests {
			t.Run(tc.amount, func(t *testing.T) {
				w := serve(t, HandleConvert(svc, nop), "/convert?amount="+tc.amount+"&from=GBP&to=CNY")

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, tc.wantErr, decodeError(t, w).Error)
			})
		}
	})

	t.Run("error status mapping", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
		}{
			{"rate not found", fmt.Errorf("%w: GBP/XYZ", provider.ErrRateNotFound), http.StatusNotFound},
			{"malformed", fmt.Errorf("%w: eof", provider.ErrMalformedResponse), http.StatusBadGateway},
			{"transport", fmt.Errorf("%w: connection refused", provider.ErrRequestFailed), http.StatusBadGateway},
			{"api error", fmt.Errorf("%w: invalid-key", provider.ErrAPIError), http.StatusBadGateway},
			{"empty currency", service.ErrEmptyCurrency, http.StatusBadRequest},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc := &mockConverterService{
					convertFunc: func(context.Context, float64, string, string) (*service.Conversion, error) {
						return nil, tc.err
					},
				}

				w := serve(t, HandleConvert(svc, nop), "/convert?amount=1&from=GBP&to=XYZ")

				assert.Equal(t, tc.status, w.Code)
				assert.Equal(t, "Error fetching exchange rate: "+tc.err.Error(), decodeError(t, w).Error)
			})
		}
	})
}

func TestHandleReverseConvert(t *testing.T) {
	svc := &mockConverterService{
		reverseConvertFunc: func(_ context.Context, amount float64, from, to string) (*service.Conversion, error) {
			return &service.Conversion{
				Direction: service.Reverse, Source: to, Target: from,
				Amount: amount, Converted: amount / 9.1, Rate: 9.1, LastUpdated: lastUpdated,
			}, nil
		},
	}

	w := serve(t, HandleReverseConvert(svc, zap.NewNop().Sugar()), "/reverse-convert?amount=91&from=GBP&to=CNY")

	require.Equal(t, http.StatusOK, w.Code)
	var resp ConversionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "reverse", resp.Direction)
	assert.Equal(t, "CNY", resp.Source)
	assert.Equal(t, "GBP", resp.Target)
	assert.InDelta(t, 10.0, resp.ConvertedAmount, 1e-9)
}

func TestHandleListCurrencies(t *testing.T) {
	w := serve(t, HandleListCurrencies(&mockConverterService{}), "/currencies")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []CurrencyResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []CurrencyResponse{
		{Code: "CNY", Symbol: "¥"},
		{Code: "EUR", Symbol: "€"},
		{Code: "GBP", Symbol: "£"},
		{Code: "USD", Symbol: "$"},
	}, resp)
}

func TestHandleHealthz(t *testing.T) {
	w := serve(t, HandleHealthz(), "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestOpenAPISpecHandler(t *testing.T) {
	w := serve(t, OpenAPISpecHandler(), "/openapi.json")

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/swagger/doc.json", w.Header().Get("Location"))
}
