package repository

import (
	"errors"
	"fmt"

	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/mappers"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultExchangeRateRepository struct {
	DB *gorm.DB
}

func NewDefaultExchangeRateRepository(db *gorm.DB) *DefaultExchangeRateRepository {
	return &DefaultExchangeRateRepository{DB: db}
}

func (r *DefaultExchangeRateRepository) UpsertRate(rate *domain.ExchangeRate) error {
	rateModel := models.ExchangeRateModel{
		BaseCurrency:   rate.BaseCurrency,
		TargetCurrency: rate.TargetCurrency,
		Rate:           rate.Rate,
		LastUpdated:    rate.LastUpdated,
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "base_currency"}, {Name: "target_currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "last_updated"}),
	}).Create(&rateModel).Error
}

func (r *DefaultExchangeRateRepository) GetRate(baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	var rateModel models.ExchangeRateModel
	err := r.DB.Where("base_currency = ? AND target_currency = ?", baseCurrency, targetCurrency).
		First(&rateModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: exchange rate", domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainExchangeRate(&rateModel), nil
}
