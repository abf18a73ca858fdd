package mappers

import (
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/models"
)

func ToDomainConversion(model *models.ConversionModel) *domain.ConversionRecord {
	return &domain.ConversionRecord{
		ID:              model.ID,
		UserID:          model.UserID,
		FromCurrency:    model.FromCurrency,
		ToCurrency:      model.ToCurrency,
		Amount:          model.Amount,
		ConvertedAmount: model.ConvertedAmount,
		Rate:            model.Rate,
		Timestamp:       model.Timestamp,
	}
}

func ToGORMConversion(record *domain.ConversionRecord) *models.ConversionModel {
	return &models.ConversionModel{
		ID:              record.ID,
		UserID:          record.UserID,
		FromCurrency:    record.FromCurrency,
		ToCurrency:      record.ToCurrency,
		Amount:          record.Amount,
		ConvertedAmount: record.ConvertedAmount,
		Rate:            record.Rate,
		Timestamp:       record.Timestamp,
	}
}

func ToDomainExchangeRate(model *models.ExchangeRateModel) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		BaseCurrency:   model.BaseCurrency,
		TargetCurrency: model.TargetCurrency,
		Rate:           model.Rate,
		LastUpdated:    model.LastUpdated,
	}
}
