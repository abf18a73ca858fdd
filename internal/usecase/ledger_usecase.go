package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wetrack/wetrack-backend/internal/domain"
	ledgerdto "github.com/wetrack/wetrack-backend/internal/usecase/dto/ledger"
)

const (
	defaultSummaryWindowDays = 30
	maxDescriptionLength     = 200
)

type LedgerUsecase interface {
	CreateCategory(userID string, name domain.CategoryName) (*domain.Category, error)
	ListCategories(userID string) ([]*domain.Category, error)
	DeleteCategory(userID, categoryID string) error

	CreateFixedCost(userID string, fixedCost *domain.FixedCost) (*domain.FixedCost, error)
	ListFixedCosts(userID string) ([]*domain.FixedCost, error)
	UpdateFixedCost(userID, fixedCostID string, update domain.FixedCostUpdate) (*domain.FixedCost, error)
	DeleteFixedCost(userID, fixedCostID string) error

	CreateExpense(userID string, expense *domain.Expense) (*domain.Expense, error)
	ListExpenses(userID string) ([]*domain.Expense, error)
	UpdateExpense(userID, expenseID string, update domain.ExpenseUpdate) (*domain.Expense, error)
	DeleteExpense(userID, expenseID string) error
	Summary(userID string, windowDays int) (*ledgerdto.SummaryOutput, error)
}

type DefaultLedgerUsecase struct {
	CategoryRepo  domain.CategoryRepository
	FixedCostRepo domain.FixedCostRepository
	ExpenseRepo   domain.ExpenseRepository
}

func NewDefaultLedgerUsecase(
	categoryRepo domain.CategoryRepository,
	fixedCostRepo domain.FixedCostRepository,
	expenseRepo domain.ExpenseRepository) *DefaultLedgerUsecase {

	return &DefaultLedgerUsecase{
		CategoryRepo:  categoryRepo,
		FixedCostRepo: fixedCostRepo,
		ExpenseRepo:   expenseRepo,
	}
}

func (uc *DefaultLedgerUsecase) CreateCategory(userID string, name domain.CategoryName) (*domain.Category, error) {
	name = domain.CategoryName(strings.ToUpper(strings.TrimSpace(string(name))))
	if !domain.ValidCategoryName(name) {
		return nil, fmt.Errorf("%w: unknown category name %q", domain.ErrValidation, name)
	}

	category := &domain.Category{
		ID:     uuid.New().String(),
		Name:   name,
		UserID: userID,
	}
	if err := uc.CategoryRepo.CreateCategory(category); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: category %s already exists", domain.ErrValidation, name)
		}
		return nil, err
	}
	return category, nil
}

func (uc *DefaultLedgerUsecase) ListCategories(userID string) ([]*domain.Category, error) {
	return uc.CategoryRepo.GetCategoriesByUserID(userID)
}

func (uc *DefaultLedgerUsecase) DeleteCategory(userID, categoryID string) error {
	return uc.CategoryRepo.DeleteCategory(userID, categoryID)
}

func (uc *DefaultLedgerUsecase) CreateFixedCost(userID string, fixedCost *domain.FixedCost) (*domain.FixedCost, error) {
	if strings.TrimSpace(fixedCost.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if fixedCost.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	if !domain.ValidFrequency(fixedCost.Frequency) {
		return nil, fmt.Errorf("%w: unknown frequency %q", domain.ErrValidation, fixedCost.Frequency)
	}
	if fixedCost.NextDueDate.IsZero() {
		return nil, fmt.Errorf("%w: next due date is required", domain.ErrValidation)
	}

	fixedCost.ID = uuid.New().String()
	fixedCost.UserID = userID
	fixedCost.Amount = fixedCost.Amount.Round(2)
	if err := uc.FixedCostRepo.CreateFixedCost(fixedCost); err != nil {
		return nil, err
	}
	return fixedCost, nil
}

func (uc *DefaultLedgerUsecase) ListFixedCosts(userID string) ([]*domain.FixedCost, error) {
	return uc.FixedCostRepo.GetFixedCostsByUserID(userID)
}

func (uc *DefaultLedgerUsecase) UpdateFixedCost(userID, fixedCostID string, update domain.FixedCostUpdate) (*domain.FixedCost, error) {
	if update.Amount != nil && update.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	if update.Frequency != nil && !domain.ValidFrequency(*update.Frequency) {
		return nil, fmt.Errorf("%w: unknown frequency %q", domain.ErrValidation, *update.Frequency)
	}
	return uc.FixedCostRepo.UpdateFixedCost(userID, fixedCostID, update)
}

func (uc *DefaultLedgerUsecase) DeleteFixedCost(userID, fixedCostID string) error {
	return uc.FixedCostRepo.DeleteFixedCost(userID, fixedCostID)
}

func (uc *DefaultLedgerUsecase) CreateExpense(userID string, expense *domain.Expense) (*domain.Expense, error) {
	if expense.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	if strings.TrimSpace(expense.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if len(expense.Description) > maxDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, maxDescriptionLength)
	}

	// The category must exist and belong to the same user; a foreign
	// category id is indistinguishable from a missing one.
	category, err := uc.CategoryRepo.GetCategoryByID(userID, expense.CategoryID)
	if err != nil {
		return nil, err
	}

	if expense.FixedCostID != "" {
		if _, err := uc.FixedCostRepo.GetFixedCostByID(userID, expense.FixedCostID); err != nil {
			return nil, err
		}
	}

	// Date is caller-supplied and defaults to today.
	if expense.Date.IsZero() {
		expense.Date = truncateToDay(time.Now().UTC())
	}

	expense.ID = uuid.New().String()
	expense.UserID = userID
	expense.CategoryName = category.Name
	expense.Amount = expense.Amount.Round(2)
	if err := uc.ExpenseRepo.CreateExpense(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (uc *DefaultLedgerUsecase) ListExpenses(userID string) ([]*domain.Expense, error) {
	return uc.ExpenseRepo.GetExpensesByUserID(userID)
}

func (uc *DefaultLedgerUsecase) UpdateExpense(userID, expenseID string, update domain.ExpenseUpdate) (*domain.Expense, error) {
	if update.Amount != nil && update.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	if update.Description != nil {
		if strings.TrimSpace(*update.Description) == "" {
			return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
		}
		if len(*update.Description) > maxDescriptionLength {
			return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, maxDescriptionLength)
		}
	}
	if update.CategoryID != nil {
		if _, err := uc.CategoryRepo.GetCategoryByID(userID, *update.CategoryID); err != nil {
			return nil, err
		}
	}
	return uc.ExpenseRepo.UpdateExpense(userID, expenseID, update)
}

func (uc *DefaultLedgerUsecase) DeleteExpense(userID, expenseID string) error {
	return uc.ExpenseRepo.DeleteExpense(userID, expenseID)
}

// Summary aggregates the user's expenses over the trailing window, grouped by
// category and ordered by descending total. An empty window yields a zero
// total and an empty group list.
func (uc *DefaultLedgerUsecase) Summary(userID string, windowDays int) (*ledgerdto.SummaryOutput, error) {
	if windowDays <= 0 {
		windowDays = defaultSummaryWindowDays
	}

	end := truncateToDay(time.Now().UTC())
	start := end.AddDate(0, 0, -windowDays)

	expenses, err := uc.ExpenseRepo.GetExpensesByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.CategoryName]decimal.Decimal)
	grandTotal := decimal.Zero
	for _, expense := range expenses {
		totals[expense.CategoryName] = totals[expense.CategoryName].Add(expense.Amount)
		grandTotal = grandTotal.Add(expense.Amount)
	}

	byCategory := make([]domain.CategoryTotal, 0, len(totals))
	for name, total := range totals {
		byCategory = append(byCategory, domain.CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		if byCategory[i].Total.Equal(byCategory[j].Total) {
			return byCategory[i].Category < byCategory[j].Category
		}
		return byCategory[i].Total.GreaterThan(byCategory[j].Total)
	})

	return &ledgerdto.SummaryOutput{
		TotalExpenses: grandTotal,
		ByCategory:    byCategory,
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
