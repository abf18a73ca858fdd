package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID           string
	UserID       string
	CategoryID   string
	CategoryName CategoryName
	Amount       decimal.Decimal
	Description  string
	Date         time.Time
	FixedCostID  string
}

type ExpenseUpdate struct {
	CategoryID  *string
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

// CategoryTotal is one group of the rolling-window summary.
type CategoryTotal struct {
	Category CategoryName
	Total    decimal.Decimal
}
