package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	UserID      string          `gorm:"type:uuid;not null;index"`
	User        UserModel       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	CategoryID  string          `gorm:"type:uuid;not null;index"`
	Category    CategoryModel   `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE;"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Description string          `gorm:"size:200;not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	FixedCostID *string         `gorm:"type:uuid"`
	FixedCost   *FixedCostModel `gorm:"foreignKey:FixedCostID;references:ID;constraint:OnDelete:SET NULL;"`
}

func (ExpenseModel) TableName() string {
	return "expenses"
}
