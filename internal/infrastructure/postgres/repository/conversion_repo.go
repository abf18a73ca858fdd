package repository

import (
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/mappers"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultConversionRepository struct {
	DB *gorm.DB
}

func NewDefaultConversionRepository(db *gorm.DB) *DefaultConversionRepository {
	return &DefaultConversionRepository{DB: db}
}

func (r *DefaultConversionRepository) CreateConversion(record *domain.ConversionRecord) error {
	return r.DB.Create(mappers.ToGORMConversion(record)).Error
}

func (r *DefaultConversionRepository) GetConversionsByUserID(userID string, filter domain.ConversionFilter) ([]*domain.ConversionRecord, error) {
	query := r.DB.Where("user_id = ?", userID)
	if filter.FromCurrency != "" {
		query = query.Where("from_currency = ?", filter.FromCurrency)
	}
	if filter.ToCurrency != "" {
		query = query.Where("to_currency = ?", filter.ToCurrency)
	}
	if !filter.Start.IsZero() {
		query = query.Where("timestamp >= ?", filter.Start)
	}
	if !filter.End.IsZero() {
		query = query.Where("timestamp <= ?", filter.End)
	}

	var conversionModels []models.ConversionModel
	if err := query.Order("timestamp DESC").Find(&conversionModels).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.ConversionRecord, len(conversionModels))
	for i := range conversionModels {
		records[i] = mappers.ToDomainConversion(&conversionModels[i])
	}
	return records, nil
}
