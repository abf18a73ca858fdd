package domain

import "time"

// Every method takes the owning user id, so an unscoped query cannot be
// written by accident.

type CategoryRepository interface {
	CreateCategory(category *Category) error
	GetCategoryByID(userID, categoryID string) (*Category, error)
	GetCategoriesByUserID(userID string) ([]*Category, error)
	// DeleteCategory removes the category and cascades to its expenses.
	DeleteCategory(userID, categoryID string) error
}

type FixedCostRepository interface {
	CreateFixedCost(fixedCost *FixedCost) error
	GetFixedCostByID(userID, fixedCostID string) (*FixedCost, error)
	GetFixedCostsByUserID(userID string) ([]*FixedCost, error)
	UpdateFixedCost(userID, fixedCostID string, update FixedCostUpdate) (*FixedCost, error)
	DeleteFixedCost(userID, fixedCostID string) error
}

type ExpenseRepository interface {
	CreateExpense(expense *Expense) error
	GetExpenseByID(userID, expenseID string) (*Expense, error)
	GetExpensesByUserID(userID string) ([]*Expense, error)
	GetExpensesByDateRange(userID string, start, end time.Time) ([]*Expense, error)
	UpdateExpense(userID, expenseID string, update ExpenseUpdate) (*Expense, error)
	DeleteExpense(userID, expenseID string) error
}
