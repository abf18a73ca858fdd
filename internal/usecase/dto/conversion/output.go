package conversiondto

import "github.com/shopspring/decimal"

type ConvertOutput struct {
	Amount       decimal.Decimal
	FromCurrency string
	ToCurrency   string
	Rate         decimal.Decimal
	Result       decimal.Decimal
}
