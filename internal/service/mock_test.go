package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"currencyconverter/internal/provider"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetRates(ctx context.Context, base string) (*provider.RateTable, error) {
	args := m.Called(ctx, base)
	table, _ := args.Get(0).(*provider.RateTable)
	return table, args.Error(1)
}

func (m *MockProvider) GetRate(ctx context.Context, base, quote string) (float64, string, error) {
	args := m.Called(ctx, base, quote)
	return args.Get(0).(float64), args.String(1), args.Error(2)
}
