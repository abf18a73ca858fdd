package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/mappers"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultExpenseRepository struct {
	DB *gorm.DB
}

func NewDefaultExpenseRepository(db *gorm.DB) *DefaultExpenseRepository {
	return &DefaultExpenseRepository{DB: db}
}

func (r *DefaultExpenseRepository) CreateExpense(expense *domain.Expense) error {
	return r.DB.Create(mappers.ToGORMExpense(expense)).Error
}

func (r *DefaultExpenseRepository) GetExpenseByID(userID, expenseID string) (*domain.Expense, error) {
	var expenseModel models.ExpenseModel
	err := r.DB.Preload("Category").
		Where("id = ? AND user_id = ?", expenseID, userID).
		First(&expenseModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: expense", domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainExpense(&expenseModel), nil
}

func (r *DefaultExpenseRepository) GetExpensesByUserID(userID string) ([]*domain.Expense, error) {
	var expenseModels []models.ExpenseModel
	err := r.DB.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&expenseModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainExpenses(expenseModels), nil
}

func (r *DefaultExpenseRepository) GetExpensesByDateRange(userID string, start, end time.Time) ([]*domain.Expense, error) {
	var expenseModels []models.ExpenseModel
	err := r.DB.Preload("Category").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&expenseModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainExpenses(expenseModels), nil
}

func (r *DefaultExpenseRepository) UpdateExpense(userID, expenseID string, update domain.ExpenseUpdate) (*domain.Expense, error) {
	updateData := map[string]interface{}{}
	if update.CategoryID != nil {
		updateData["category_id"] = *update.CategoryID
	}
	if update.Amount != nil {
		updateData["amount"] = *update.Amount
	}
	if update.Description != nil {
		updateData["description"] = *update.Description
	}
	if update.Date != nil {
		updateData["date"] = *update.Date
	}

	if len(updateData) > 0 {
		result := r.DB.Model(&models.ExpenseModel{}).
			Where("id = ? AND user_id = ?", expenseID, userID).
			Updates(updateData)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, fmt.Errorf("%w: expense", domain.ErrNotFound)
		}
	}

	return r.GetExpenseByID(userID, expenseID)
}

func (r *DefaultExpenseRepository) DeleteExpense(userID, expenseID string) error {
	result := r.DB.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: expense", domain.ErrNotFound)
	}
	return nil
}

func toDomainExpenses(expenseModels []models.ExpenseModel) []*domain.Expense {
	expenses := make([]*domain.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = mappers.ToDomainExpense(&expenseModels[i])
	}
	return expenses
}
