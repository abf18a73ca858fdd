package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Quote is a normalized provider answer for one conversion request.
type Quote struct {
	Rate            decimal.Decimal
	ConvertedAmount decimal.Decimal
}

// RateProvider is the outbound port to the external exchange-rate service.
// Implementations make exactly one network call per method, with a bounded
// timeout, and map every upstream failure to ErrProviderUnavailable.
type RateProvider interface {
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*Quote, error)
	FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error)
	Currencies(ctx context.Context) (map[string]string, error)
}
