package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyYearly  Frequency = "YEARLY"
)

func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyMonthly, FrequencyWeekly, FrequencyYearly:
		return true
	}
	return false
}

// FixedCost is a recurring obligation. It is not itself a ledger entry:
// expenses reference it through Expense.FixedCostID.
type FixedCost struct {
	ID          string
	UserID      string
	Name        string
	Amount      decimal.Decimal
	Frequency   Frequency
	NextDueDate time.Time
}

type FixedCostUpdate struct {
	Name        *string
	Amount      *decimal.Decimal
	Frequency   *Frequency
	NextDueDate *time.Time
}
