package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConversionModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	UserID          string          `gorm:"type:uuid;not null;index"`
	User            UserModel       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	FromCurrency    string          `gorm:"size:3;not null;index:idx_conversion_pair"`
	ToCurrency      string          `gorm:"size:3;not null;index:idx_conversion_pair"`
	Amount          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ConvertedAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Rate            decimal.Decimal `gorm:"type:numeric(16,6);not null"`
	Timestamp       time.Time       `gorm:"not null;index"`
}

func (ConversionModel) TableName() string {
	return "conversions"
}
