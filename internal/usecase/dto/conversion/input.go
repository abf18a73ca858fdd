package conversiondto

// ConvertInput carries raw, not-yet-validated request values. Amount stays a
// string until validation so a non-numeric value is a validation error, not a
// provider call.
type ConvertInput struct {
	Amount       string
	FromCurrency string
	ToCurrency   string
}
