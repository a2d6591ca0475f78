package api

import (
	"context"

	"currencyconverter/internal/service"
)

// mockConverterService implements service.ConverterService for testing.
type mockConverterService struct {
	convertFunc        func(ctx context.Context, amount float64, from, to string) (*service.Conversion, error)
	reverseConvertFunc func(ctx context.Context, amount float64, from, to string) (*service.Conversion, error)
}

func (m *mockConverterService) Convert(ctx context.Context, amount float64, from, to string) (*service.Conversion, error) {
	return m.convertFunc(ctx, amount, from, to)
}

func (m *mockConverterService) ReverseConvert(ctx context.Context, amount float64, from, to string) (*service.Conversion, error) {
	return m.reverseConvertFunc(ctx, amount, from, to)
}

func (m *mockConverterService) Currencies() []service.Currency {
	return service.Currencies()
}
