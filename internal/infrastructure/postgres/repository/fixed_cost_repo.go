package repository

import (
	"errors"
	"fmt"

	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/mappers"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultFixedCostRepository struct {
	DB *gorm.DB
}

func NewDefaultFixedCostRepository(db *gorm.DB) *DefaultFixedCostRepository {
	return &DefaultFixedCostRepository{DB: db}
}

func (r *DefaultFixedCostRepository) CreateFixedCost(fixedCost *domain.FixedCost) error {
	return r.DB.Create(mappers.ToGORMFixedCost(fixedCost)).Error
}

func (r *DefaultFixedCostRepository) GetFixedCostByID(userID, fixedCostID string) (*domain.FixedCost, error) {
	var fixedCostModel models.FixedCostModel
	if err := r.DB.Where("id = ? AND user_id = ?", fixedCostID, userID).First(&fixedCostModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: fixed cost", domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainFixedCost(&fixedCostModel), nil
}

func (r *DefaultFixedCostRepository) GetFixedCostsByUserID(userID string) ([]*domain.FixedCost, error) {
	var fixedCostModels []models.FixedCostModel
	if err := r.DB.Where("user_id = ?", userID).Order("next_due_date ASC").Find(&fixedCostModels).Error; err != nil {
		return nil, err
	}

	fixedCosts := make([]*domain.FixedCost, len(fixedCostModels))
	for i := range fixedCostModels {
		fixedCosts[i] = mappers.ToDomainFixedCost(&fixedCostModels[i])
	}
	return fixedCosts, nil
}

func (r *DefaultFixedCostRepository) UpdateFixedCost(userID, fixedCostID string, update domain.FixedCostUpdate) (*domain.FixedCost, error) {
	updateData := map[string]interface{}{}
	if update.Name != nil {
		updateData["name"] = *update.Name
	}
	if update.Amount != nil {
		updateData["amount"] = *update.Amount
	}
	if update.Frequency != nil {
		updateData["frequency"] = string(*update.Frequency)
	}
	if update.NextDueDate != nil {
		updateData["next_due_date"] = *update.NextDueDate
	}

	if len(updateData) > 0 {
		result := r.DB.Model(&models.FixedCostModel{}).
			Where("id = ? AND user_id = ?", fixedCostID, userID).
			Updates(updateData)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, fmt.Errorf("%w: fixed cost", domain.ErrNotFound)
		}
	}

	return r.GetFixedCostByID(userID, fixedCostID)
}

func (r *DefaultFixedCostRepository) DeleteFixedCost(userID, fixedCostID string) error {
	result := r.DB.Where("id = ? AND user_id = ?", fixedCostID, userID).Delete(&models.FixedCostModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: fixed cost", domain.ErrNotFound)
	}
	return nil
}
