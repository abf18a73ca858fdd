package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wetrack/wetrack-backend/internal/domain"
)

type fakeCategoryRepo struct {
	categories map[string]*domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *fakeCategoryRepo) CreateCategory(category *domain.Category) error {
	for _, existing := range r.categories {
		if existing.UserID == category.UserID && existing.Name == category.Name {
			return domain.ErrAlreadyExists
		}
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetCategoryByID(userID, categoryID string) (*domain.Category, error) {
	category, ok := r.categories[categoryID]
	if !ok || category.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) GetCategoriesByUserID(userID string) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			out = append(out, category)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) DeleteCategory(userID, categoryID string) error {
	category, ok := r.categories[categoryID]
	if !ok || category.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.categories, categoryID)
	return nil
}

type fakeFixedCostRepo struct {
	fixedCosts map[string]*domain.FixedCost
}

func newFakeFixedCostRepo() *fakeFixedCostRepo {
	return &fakeFixedCostRepo{fixedCosts: make(map[string]*domain.FixedCost)}
}

func (r *fakeFixedCostRepo) CreateFixedCost(fixedCost *domain.FixedCost) error {
	r.fixedCosts[fixedCost.ID] = fixedCost
	return nil
}

func (r *fakeFixedCostRepo) GetFixedCostByID(userID, fixedCostID string) (*domain.FixedCost, error) {
	fixedCost, ok := r.fixedCosts[fixedCostID]
	if !ok || fixedCost.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return fixedCost, nil
}

func (r *fakeFixedCostRepo) GetFixedCostsByUserID(userID string) ([]*domain.FixedCost, error) {
	var out []*domain.FixedCost
	for _, fixedCost := range r.fixedCosts {
		if fixedCost.UserID == userID {
			out = append(out, fixedCost)
		}
	}
	return out, nil
}

func (r *fakeFixedCostRepo) UpdateFixedCost(userID, fixedCostID string, update domain.FixedCostUpdate) (*domain.FixedCost, error) {
	fixedCost, err := r.GetFixedCostByID(userID, fixedCostID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		fixedCost.Name = *update.Name
	}
	if update.Amount != nil {
		fixedCost.Amount = *update.Amount
	}
	if update.Frequency != nil {
		fixedCost.Frequency = *update.Frequency
	}
	if update.NextDueDate != nil {
		fixedCost.NextDueDate = *update.NextDueDate
	}
	return fixedCost, nil
}

func (r *fakeFixedCostRepo) DeleteFixedCost(userID, fixedCostID string) error {
	if _, err := r.GetFixedCostByID(userID, fixedCostID); err != nil {
		return err
	}
	delete(r.fixedCosts, fixedCostID)
	return nil
}

type fakeExpenseRepo struct {
	expenses map[string]*domain.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]*domain.Expense)}
}

func (r *fakeExpenseRepo) CreateExpense(expense *domain.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepo) GetExpenseByID(userID, expenseID string) (*domain.Expense, error) {
	expense, ok := r.expenses[expenseID]
	if !ok || expense.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return expense, nil
}

func (r *fakeExpenseRepo) GetExpensesByUserID(userID string) ([]*domain.Expense, error) {
	var out []*domain.Expense
	for _, expense := range r.expenses {
		if expense.UserID == userID {
			out = append(out, expense)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) GetExpensesByDateRange(userID string, start, end time.Time) ([]*domain.Expense, error) {
	var out []*domain.Expense
	for _, expense := range r.expenses {
		if expense.UserID == userID && !expense.Date.Before(start) && !expense.Date.After(end) {
			out = append(out, expense)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) UpdateExpense(userID, expenseID string, update domain.ExpenseUpdate) (*domain.Expense, error) {
	expense, err := r.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}
	if update.CategoryID != nil {
		expense.CategoryID = *update.CategoryID
	}
	if update.Amount != nil {
		expense.Amount = *update.Amount
	}
	if update.Description != nil {
		expense.Description = *update.Description
	}
	if update.Date != nil {
		expense.Date = *update.Date
	}
	return expense, nil
}

func (r *fakeExpenseRepo) DeleteExpense(userID, expenseID string) error {
	if _, err := r.GetExpenseByID(userID, expenseID); err != nil {
		return err
	}
	delete(r.expenses, expenseID)
	return nil
}

type ledgerFixture struct {
	uc           *DefaultLedgerUsecase
	categories   *fakeCategoryRepo
	fixedCosts   *fakeFixedCostRepo
	expenseStore *fakeExpenseRepo
}

func newLedgerFixture() *ledgerFixture {
	categories := newFakeCategoryRepo()
	fixedCosts := newFakeFixedCostRepo()
	expenses := newFakeExpenseRepo()
	return &ledgerFixture{
		uc:           NewDefaultLedgerUsecase(categories, fixedCosts, expenses),
		categories:   categories,
		fixedCosts:   fixedCosts,
		expenseStore: expenses,
	}
}

func (f *ledgerFixture) mustCreateCategory(t *testing.T, userID string, name domain.CategoryName) *domain.Category {
	t.Helper()
	category, err := f.uc.CreateCategory(userID, name)
	require.NoError(t, err)
	return category
}

func TestCreateCategoryNormalizesName(t *testing.T) {
	f := newLedgerFixture()

	category, err := f.uc.CreateCategory("user-1", " food ")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryFood, category.Name)
	assert.NotEmpty(t, category.ID)
}

func TestCreateCategoryRejectsUnknownName(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.uc.CreateCategory("user-1", "GROCERIES")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateCategoryDuplicatePerUser(t *testing.T) {
	f := newLedgerFixture()
	f.mustCreateCategory(t, "user-1", domain.CategoryFood)

	_, err := f.uc.CreateCategory("user-1", domain.CategoryFood)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// The same name is fine for a different user.
	_, err = f.uc.CreateCategory("user-2", domain.CategoryFood)
	assert.NoError(t, err)
}

func TestCreateFixedCostValidation(t *testing.T) {
	f := newLedgerFixture()
	dueDate := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		fixedCost domain.FixedCost
	}{
		{"missing name", domain.FixedCost{Amount: decimal.NewFromInt(10), Frequency: domain.FrequencyMonthly, NextDueDate: dueDate}},
		{"negative amount", domain.FixedCost{Name: "Rent", Amount: decimal.NewFromInt(-10), Frequency: domain.FrequencyMonthly, NextDueDate: dueDate}},
		{"unknown frequency", domain.FixedCost{Name: "Rent", Amount: decimal.NewFromInt(10), Frequency: "DAILY", NextDueDate: dueDate}},
		{"missing due date", domain.FixedCost{Name: "Rent", Amount: decimal.NewFromInt(10), Frequency: domain.FrequencyMonthly}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixedCost := tt.fixedCost
			_, err := f.uc.CreateFixedCost("user-1", &fixedCost)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateExpenseDenormalizesCategory(t *testing.T) {
	f := newLedgerFixture()
	category := f.mustCreateCategory(t, "user-1", domain.CategoryTravel)

	expense, err := f.uc.CreateExpense("user-1", &domain.Expense{
		CategoryID:  category.ID,
		Amount:      decimal.RequireFromString("12.345"),
		Description: "train ticket",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryTravel, expense.CategoryName)
	assert.True(t, expense.Amount.Equal(decimal.RequireFromString("12.35")), "amount=%s", expense.Amount)
	assert.False(t, expense.Date.IsZero(), "date must default to today")
	assert.Equal(t, expense.Date, expense.Date.Truncate(24*time.Hour))
}

func TestCreateExpenseForeignCategory(t *testing.T) {
	f := newLedgerFixture()
	category := f.mustCreateCategory(t, "user-2", domain.CategoryFood)

	_, err := f.uc.CreateExpense("user-1", &domain.Expense{
		CategoryID:  category.ID,
		Amount:      decimal.NewFromInt(5),
		Description: "lunch",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateExpenseForeignFixedCost(t *testing.T) {
	f := newLedgerFixture()
	category := f.mustCreateCategory(t, "user-1", domain.CategoryFixed)
	theirs, err := f.uc.CreateFixedCost("user-2", &domain.FixedCost{
		Name:        "Rent",
		Amount:      decimal.NewFromInt(900),
		Frequency:   domain.FrequencyMonthly,
		NextDueDate: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = f.uc.CreateExpense("user-1", &domain.Expense{
		CategoryID:  category.ID,
		Amount:      decimal.NewFromInt(900),
		Description: "rent payment",
		FixedCostID: theirs.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSummaryEmptyWindow(t *testing.T) {
	f := newLedgerFixture()

	summary, err := f.uc.Summary("user-1", 0)
	require.NoError(t, err)
	assert.True(t, summary.TotalExpenses.IsZero())
	assert.Empty(t, summary.ByCategory)
}

func TestSummaryGroupsAndOrders(t *testing.T) {
	f := newLedgerFixture()
	food := f.mustCreateCategory(t, "user-1", domain.CategoryFood)
	travel := f.mustCreateCategory(t, "user-1", domain.CategoryTravel)

	add := func(categoryID, amount string) {
		t.Helper()
		_, err := f.uc.CreateExpense("user-1", &domain.Expense{
			CategoryID:  categoryID,
			Amount:      decimal.RequireFromString(amount),
			Description: "entry",
		})
		require.NoError(t, err)
	}
	add(food.ID, "10")
	add(food.ID, "5.50")
	add(travel.ID, "20")

	// Another user's spending stays out of the summary.
	other := f.mustCreateCategory(t, "user-2", domain.CategoryFood)
	_, err := f.uc.CreateExpense("user-2", &domain.Expense{
		CategoryID:  other.ID,
		Amount:      decimal.NewFromInt(99),
		Description: "noise",
	})
	require.NoError(t, err)

	summary, err := f.uc.Summary("user-1", 30)
	require.NoError(t, err)

	assert.True(t, summary.TotalExpenses.Equal(decimal.RequireFromString("35.50")), "total=%s", summary.TotalExpenses)
	require.Len(t, summary.ByCategory, 2)
	assert.Equal(t, domain.CategoryTravel, summary.ByCategory[0].Category)
	assert.True(t, summary.ByCategory[0].Total.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, domain.CategoryFood, summary.ByCategory[1].Category)
	assert.True(t, summary.ByCategory[1].Total.Equal(decimal.RequireFromString("15.50")))
}

func TestSummaryExcludesExpensesOutsideWindow(t *testing.T) {
	f := newLedgerFixture()
	category := f.mustCreateCategory(t, "user-1", domain.CategoryPurchase)

	old := time.Now().UTC().AddDate(0, 0, -45)
	_, err := f.uc.CreateExpense("user-1", &domain.Expense{
		CategoryID:  category.ID,
		Amount:      decimal.NewFromInt(100),
		Description: "old purchase",
		Date:        old,
	})
	require.NoError(t, err)

	summary, err := f.uc.Summary("user-1", 30)
	require.NoError(t, err)
	assert.True(t, summary.TotalExpenses.IsZero())
}

func TestUpdateExpenseValidation(t *testing.T) {
	f := newLedgerFixture()
	category := f.mustCreateCategory(t, "user-1", domain.CategoryFood)
	expense, err := f.uc.CreateExpense("user-1", &domain.Expense{
		CategoryID:  category.ID,
		Amount:      decimal.NewFromInt(5),
		Description: "lunch",
	})
	require.NoError(t, err)

	negative := decimal.NewFromInt(-1)
	_, err = f.uc.UpdateExpense("user-1", expense.ID, domain.ExpenseUpdate{Amount: &negative})
	assert.ErrorIs(t, err, domain.ErrValidation)

	empty := "   "
	_, err = f.uc.UpdateExpense("user-1", expense.ID, domain.ExpenseUpdate{Description: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteFixedCostForeignOwner(t *testing.T) {
	f := newLedgerFixture()
	fixedCost, err := f.uc.CreateFixedCost("user-1", &domain.FixedCost{
		Name:        "Gym",
		Amount:      decimal.NewFromInt(30),
		Frequency:   domain.FrequencyMonthly,
		NextDueDate: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	err = f.uc.DeleteFixedCost("user-2", fixedCost.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
