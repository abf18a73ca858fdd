package ledgerdto

import (
	"github.com/shopspring/decimal"
	"github.com/wetrack/wetrack-backend/internal/domain"
)

type SummaryOutput struct {
	TotalExpenses decimal.Decimal
	ByCategory    []domain.CategoryTotal
}
