package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionRecord is an immutable log entry of one conversion performed by a
// user. Rate is the externally observed rate at request time and is never
// recomputed later.
type ConversionRecord struct {
	ID              string
	UserID          string
	FromCurrency    string
	ToCurrency      string
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
	Rate            decimal.Decimal
	Timestamp       time.Time
}

// ExchangeRate is a best-effort snapshot of the last observed rate for a
// currency pair. The live conversion path never reads it.
type ExchangeRate struct {
	BaseCurrency   string
	TargetCurrency string
	Rate           decimal.Decimal
	LastUpdated    time.Time
}

// ConversionFilter narrows history queries. Zero values mean "no filter".
type ConversionFilter struct {
	FromCurrency string
	ToCurrency   string
	Start        time.Time
	End          time.Time
}
