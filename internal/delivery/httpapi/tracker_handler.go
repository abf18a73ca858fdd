package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/usecase"
)

const dateLayout = "2006-01-02"

type TrackerHandler struct {
	ledgerUsecase usecase.LedgerUsecase
}

func NewTrackerHandler(ledgerUsecase usecase.LedgerUsecase) *TrackerHandler {
	return &TrackerHandler{ledgerUsecase: ledgerUsecase}
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *TrackerHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.ledgerUsecase.ListCategories(UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	payload := make([]categoryResponse, len(categories))
	for i, category := range categories {
		payload[i] = categoryResponse{ID: category.ID, Name: string(category.Name)}
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *TrackerHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}

	category, err := h.ledgerUsecase.CreateCategory(UserIDFromContext(r.Context()), domain.CategoryName(req.Name))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, categoryResponse{ID: category.ID, Name: string(category.Name)})
}

func (h *TrackerHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	err := h.ledgerUsecase.DeleteCategory(UserIDFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type fixedCostRequest struct {
	Name        string           `json:"name"`
	Amount      *decimal.Decimal `json:"amount"`
	Frequency   string           `json:"frequency"`
	NextDueDate string           `json:"next_due_date"`
}

type fixedCostResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	NextDueDate string  `json:"next_due_date"`
}

func (h *TrackerHandler) ListFixedCosts(w http.ResponseWriter, r *http.Request) {
	fixedCosts, err := h.ledgerUsecase.ListFixedCosts(UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	payload := make([]fixedCostResponse, len(fixedCosts))
	for i, fixedCost := range fixedCosts {
		payload[i] = toFixedCostResponse(fixedCost)
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *TrackerHandler) CreateFixedCost(w http.ResponseWriter, r *http.Request) {
	var req fixedCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}

	fixedCost := &domain.FixedCost{
		Name:      req.Name,
		Frequency: domain.Frequency(req.Frequency),
	}
	if req.Amount != nil {
		fixedCost.Amount = *req.Amount
	}
	if req.NextDueDate != "" {
		dueDate, err := time.Parse(dateLayout, req.NextDueDate)
		if err != nil {
			writeError(w, fmt.Errorf("%w: next_due_date must be YYYY-MM-DD", domain.ErrValidation))
			return
		}
		fixedCost.NextDueDate = dueDate
	}

	created, err := h.ledgerUsecase.CreateFixedCost(UserIDFromContext(r.Context()), fixedCost)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFixedCostResponse(created))
}

func (h *TrackerHandler) UpdateFixedCost(w http.ResponseWriter, r *http.Request) {
	var req fixedCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}

	update := domain.FixedCostUpdate{Amount: req.Amount}
	if req.Name != "" {
		update.Name = &req.Name
	}
	if req.Frequency != "" {
		frequency := domain.Frequency(req.Frequency)
		update.Frequency = &frequency
	}
	if req.NextDueDate != "" {
		dueDate, err := time.Parse(dateLayout, req.NextDueDate)
		if err != nil {
			writeError(w, fmt.Errorf("%w: next_due_date must be YYYY-MM-DD", domain.ErrValidation))
			return
		}
		update.NextDueDate = &dueDate
	}

	updated, err := h.ledgerUsecase.UpdateFixedCost(UserIDFromContext(r.Context()), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFixedCostResponse(updated))
}

func (h *TrackerHandler) DeleteFixedCost(w http.ResponseWriter, r *http.Request) {
	err := h.ledgerUsecase.DeleteFixedCost(UserIDFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type expenseRequest struct {
	CategoryID  *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        string           `json:"date"`
	FixedCostID string           `json:"fixed_cost"`
}

type expenseResponse struct {
	ID           string  `json:"id"`
	Category     string  `json:"category"`
	CategoryName string  `json:"category_name"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	FixedCost    string  `json:"fixed_cost,omitempty"`
}

func (h *TrackerHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.ledgerUsecase.ListExpenses(UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	payload := make([]expenseResponse, len(expenses))
	for i, expense := range expenses {
		payload[i] = toExpenseResponse(expense)
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *TrackerHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}
	if req.CategoryID == nil {
		writeError(w, fmt.Errorf("%w: category is required", domain.ErrValidation))
		return
	}

	expense := &domain.Expense{
		CategoryID:  *req.CategoryID,
		FixedCostID: req.FixedCostID,
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			writeError(w, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation))
			return
		}
		expense.Date = date
	}

	created, err := h.ledgerUsecase.CreateExpense(UserIDFromContext(r.Context()), expense)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponse(created))
}

func (h *TrackerHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}

	update := domain.ExpenseUpdate{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			writeError(w, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation))
			return
		}
		update.Date = &date
	}

	updated, err := h.ledgerUsecase.UpdateExpense(UserIDFromContext(r.Context()), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseResponse(updated))
}

func (h *TrackerHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	err := h.ledgerUsecase.DeleteExpense(UserIDFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type summaryResponse struct {
	TotalExpenses float64                 `json:"total_expenses"`
	ByCategory    []categoryTotalResponse `json:"by_category"`
}

type categoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Summary handles GET /tracker/expenses/summary/. The window defaults to the
// trailing 30 days.
func (h *TrackerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	windowDays := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, fmt.Errorf("%w: days must be a positive integer", domain.ErrValidation))
			return
		}
		windowDays = parsed
	}

	summary, err := h.ledgerUsecase.Summary(UserIDFromContext(r.Context()), windowDays)
	if err != nil {
		writeError(w, err)
		return
	}

	payload := summaryResponse{
		TotalExpenses: summary.TotalExpenses.InexactFloat64(),
		ByCategory:    make([]categoryTotalResponse, len(summary.ByCategory)),
	}
	for i, group := range summary.ByCategory {
		payload.ByCategory[i] = categoryTotalResponse{
			Category: string(group.Category),
			Total:    group.Total.InexactFloat64(),
		}
	}
	writeJSON(w, http.StatusOK, payload)
}

func toFixedCostResponse(fixedCost *domain.FixedCost) fixedCostResponse {
	return fixedCostResponse{
		ID:          fixedCost.ID,
		Name:        fixedCost.Name,
		Amount:      fixedCost.Amount.InexactFloat64(),
		Frequency:   string(fixedCost.Frequency),
		NextDueDate: fixedCost.NextDueDate.Format(dateLayout),
	}
}

func toExpenseResponse(expense *domain.Expense) expenseResponse {
	return expenseResponse{
		ID:           expense.ID,
		Category:     expense.CategoryID,
		CategoryName: string(expense.CategoryName),
		Amount:       expense.Amount.InexactFloat64(),
		Description:  expense.Description,
		Date:         expense.Date.Format(dateLayout),
		FixedCost:    expense.FixedCostID,
	}
}
