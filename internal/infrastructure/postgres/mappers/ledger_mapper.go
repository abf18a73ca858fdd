package mappers

import (
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/postgres/models"
)

func ToDomainCategory(model *models.CategoryModel) *domain.Category {
	return &domain.Category{
		ID:     model.ID,
		Name:   domain.CategoryName(model.Name),
		UserID: model.UserID,
	}
}

func ToGORMCategory(category *domain.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:     category.ID,
		Name:   string(category.Name),
		UserID: category.UserID,
	}
}

func ToDomainFixedCost(model *models.FixedCostModel) *domain.FixedCost {
	return &domain.FixedCost{
		ID:          model.ID,
		UserID:      model.UserID,
		Name:        model.Name,
		Amount:      model.Amount,
		Frequency:   domain.Frequency(model.Frequency),
		NextDueDate: model.NextDueDate,
	}
}

func ToGORMFixedCost(fixedCost *domain.FixedCost) *models.FixedCostModel {
	return &models.FixedCostModel{
		ID:          fixedCost.ID,
		UserID:      fixedCost.UserID,
		Name:        fixedCost.Name,
		Amount:      fixedCost.Amount,
		Frequency:   string(fixedCost.Frequency),
		NextDueDate: fixedCost.NextDueDate,
	}
}

// ToDomainExpense expects model.Category to be preloaded; the category name
// rides along on the domain expense for summaries and serialization.
func ToDomainExpense(model *models.ExpenseModel) *domain.Expense {
	expense := &domain.Expense{
		ID:           model.ID,
		UserID:       model.UserID,
		CategoryID:   model.CategoryID,
		CategoryName: domain.CategoryName(model.Category.Name),
		Amount:       model.Amount,
		Description:  model.Description,
		Date:         model.Date,
	}
	if model.FixedCostID != nil {
		expense.FixedCostID = *model.FixedCostID
	}
	return expense
}

func ToGORMExpense(expense *domain.Expense) *models.ExpenseModel {
	model := &models.ExpenseModel{
		ID:          expense.ID,
		UserID:      expense.UserID,
		CategoryID:  expense.CategoryID,
		Amount:      expense.Amount,
		Description: expense.Description,
		Date:        expense.Date,
	}
	if expense.FixedCostID != "" {
		model.FixedCostID = &expense.FixedCostID
	}
	return model
}
