package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FixedCostModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	UserID      string          `gorm:"type:uuid;not null;index"`
	User        UserModel       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Name        string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Frequency   string          `gorm:"not null"`
	NextDueDate time.Time       `gorm:"type:date;not null"`
}

func (FixedCostModel) TableName() string {
	return "fixed_costs"
}
