package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateModel is the best-effort per-pair rate snapshot. The live
// conversion path never reads it.
type ExchangeRateModel struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	BaseCurrency   string          `gorm:"size:3;not null;uniqueIndex:idx_rate_pair"`
	TargetCurrency string          `gorm:"size:3;not null;uniqueIndex:idx_rate_pair"`
	Rate           decimal.Decimal `gorm:"type:numeric(16,6);not null"`
	LastUpdated    time.Time       `gorm:"not null"`
}

func (ExchangeRateModel) TableName() string {
	return "exchange_rates"
}
