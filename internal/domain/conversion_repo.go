package domain

type ConversionRepository interface {
	CreateConversion(record *ConversionRecord) error
	GetConversionsByUserID(userID string, filter ConversionFilter) ([]*ConversionRecord, error)
}

type ExchangeRateRepository interface {
	// UpsertRate replaces the snapshot for the (base, target) pair.
	UpsertRate(rate *ExchangeRate) error
	GetRate(baseCurrency, targetCurrency string) (*ExchangeRate, error)
}
