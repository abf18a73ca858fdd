package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/usecase"
	conversiondto "github.com/wetrack/wetrack-backend/internal/usecase/dto/conversion"
)

type CurrencyHandler struct {
	conversionUsecase usecase.ConversionUsecase
}

func NewCurrencyHandler(conversionUsecase usecase.ConversionUsecase) *CurrencyHandler {
	return &CurrencyHandler{conversionUsecase: conversionUsecase}
}

type convertResponse struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Rate   float64 `json:"rate"`
	Result float64 `json:"result"`
}

// Convert handles GET /currency/convert/. Nothing is persisted here.
func (h *CurrencyHandler) Convert(w http.ResponseWriter, r *http.Request) {
	input := &conversiondto.ConvertInput{
		Amount:       r.URL.Query().Get("amount"),
		FromCurrency: r.URL.Query().Get("from"),
		ToCurrency:   r.URL.Query().Get("to"),
	}

	output, err := h.conversionUsecase.Convert(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Amount: output.Amount.InexactFloat64(),
		From:   output.FromCurrency,
		To:     output.ToCurrency,
		Rate:   output.Rate.InexactFloat64(),
		Result: output.Result.InexactFloat64(),
	})
}

type convertRequest struct {
	Amount       json.RawMessage `json:"amount"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
}

type conversionRecordResponse struct {
	ID              string  `json:"id"`
	FromCurrency    string  `json:"from_currency"`
	ToCurrency      string  `json:"to_currency"`
	Amount          float64 `json:"amount"`
	ConvertedAmount float64 `json:"converted_amount"`
	Rate            float64 `json:"rate"`
	Timestamp       string  `json:"timestamp"`
}

// ConvertAndRecord handles POST /currency/convert/ for an authenticated user:
// the same conversion flow, plus an appended ConversionRecord.
func (h *CurrencyHandler) ConvertAndRecord(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}

	input := &conversiondto.ConvertInput{
		// The amount may arrive as a JSON number or a quoted string.
		Amount:       strings.Trim(string(req.Amount), `"`),
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
	}

	record, err := h.conversionUsecase.ConvertForUser(r.Context(), UserIDFromContext(r.Context()), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toConversionRecordResponse(record))
}

type rateResponse struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// Rate handles GET /currency/rate/.
func (h *CurrencyHandler) Rate(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	rate, err := h.conversionUsecase.GetRate(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rateResponse{
		From: strings.ToUpper(strings.TrimSpace(from)),
		To:   strings.ToUpper(strings.TrimSpace(to)),
		Rate: rate.InexactFloat64(),
	})
}

type currenciesResponse struct {
	Currencies map[string]string `json:"currencies"`
}

// Currencies handles GET /currency/currencies/.
func (h *CurrencyHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.conversionUsecase.GetCurrencies(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, currenciesResponse{Currencies: currencies})
}

type historyResponse struct {
	Conversions []conversionRecordResponse `json:"conversions"`
}

// History handles GET /currency/history/ with optional pair and time filters.
func (h *CurrencyHandler) History(w http.ResponseWriter, r *http.Request) {
	filter := domain.ConversionFilter{
		FromCurrency: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("from"))),
		ToCurrency:   strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("to"))),
	}
	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, fmt.Errorf("%w: start must be RFC3339", domain.ErrValidation))
			return
		}
		filter.Start = start
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, fmt.Errorf("%w: end must be RFC3339", domain.ErrValidation))
			return
		}
		filter.End = end
	}

	records, err := h.conversionUsecase.GetHistory(UserIDFromContext(r.Context()), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	payload := historyResponse{Conversions: make([]conversionRecordResponse, len(records))}
	for i, record := range records {
		payload.Conversions[i] = toConversionRecordResponse(record)
	}
	writeJSON(w, http.StatusOK, payload)
}

func toConversionRecordResponse(record *domain.ConversionRecord) conversionRecordResponse {
	return conversionRecordResponse{
		ID:              record.ID,
		FromCurrency:    record.FromCurrency,
		ToCurrency:      record.ToCurrency,
		Amount:          record.Amount.InexactFloat64(),
		ConvertedAmount: record.ConvertedAmount.InexactFloat64(),
		Rate:            record.Rate.InexactFloat64(),
		Timestamp:       record.Timestamp.Format(time.RFC3339),
	}
}
