package repository

import (
	"errors"
	"fmt"

	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/mappers"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCategoryRepository struct {
	DB *gorm.DB
}

func NewDefaultCategoryRepository(db *gorm.DB) *DefaultCategoryRepository {
	return &DefaultCategoryRepository{DB: db}
}

func (r *DefaultCategoryRepository) CreateCategory(category *domain.Category) error {
	if err := r.DB.Create(mappers.ToGORMCategory(category)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: category %s", domain.ErrAlreadyExists, category.Name)
		}
		return err
	}
	return nil
}

func (r *DefaultCategoryRepository) GetCategoryByID(userID, categoryID string) (*domain.Category, error) {
	var categoryModel models.CategoryModel
	if err := r.DB.Where("id = ? AND user_id = ?", categoryID, userID).First(&categoryModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category", domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainCategory(&categoryModel), nil
}

func (r *DefaultCategoryRepository) GetCategoriesByUserID(userID string) ([]*domain.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.DB.Where("user_id = ?", userID).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = mappers.ToDomainCategory(&categoryModels[i])
	}
	return categories, nil
}

// DeleteCategory removes the row; dependent expenses go with it through the
// ON DELETE CASCADE constraint.
func (r *DefaultCategoryRepository) DeleteCategory(userID, categoryID string) error {
	result := r.DB.Where("id = ? AND user_id = ?", categoryID, userID).Delete(&models.CategoryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: category", domain.ErrNotFound)
	}
	return nil
}
