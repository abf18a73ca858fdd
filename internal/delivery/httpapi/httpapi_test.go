package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/usecase"
	conversiondto "github.com/wetrack/wetrack-backend/internal/usecase/dto/conversion"
)

func TestWriteErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", fmt.Errorf("%w: bad amount", domain.ErrValidation), http.StatusBadRequest},
		{"unauthorized", fmt.Errorf("%w: invalid token", domain.ErrUnauthorized), http.StatusUnauthorized},
		{"not found", fmt.Errorf("%w: expense", domain.ErrNotFound), http.StatusNotFound},
		{"provider down", fmt.Errorf("%w: request failed", domain.ErrProviderUnavailable), http.StatusServiceUnavailable},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantStatus == http.StatusInternalServerError {
				// Internal detail stays out of the body.
				assert.NotContains(t, rec.Body.String(), "disk on fire")
			}
		})
	}
}

type staticTokenManager struct{}

func (staticTokenManager) IssuePair(userID string) (*domain.TokenPair, error) {
	return &domain.TokenPair{Access: "access-" + userID, Refresh: "refresh-" + userID}, nil
}

func (staticTokenManager) VerifyAccess(token string) (string, error) {
	userID, found := strings.CutPrefix(token, "access-")
	if !found {
		return "", fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	return userID, nil
}

func (staticTokenManager) VerifyRefresh(token string) (string, error) {
	userID, found := strings.CutPrefix(token, "refresh-")
	if !found {
		return "", fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	return userID, nil
}

func TestRequireAuth(t *testing.T) {
	var seenUserID string
	handler := RequireAuth(staticTokenManager{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"empty token", "Bearer ", http.StatusUnauthorized, ""},
		{"invalid token", "Bearer nonsense", http.StatusUnauthorized, ""},
		{"valid token", "Bearer access-user-1", http.StatusOK, "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/tracker/expenses/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, seenUserID)
		})
	}
}

// fakeConversionUsecase panics on anything the test does not stub.
type fakeConversionUsecase struct {
	usecase.ConversionUsecase
	convert func(input *conversiondto.ConvertInput) (*conversiondto.ConvertOutput, error)
}

func (f *fakeConversionUsecase) Convert(ctx context.Context, input *conversiondto.ConvertInput) (*conversiondto.ConvertOutput, error) {
	return f.convert(input)
}

func TestCurrencyConvertHandler(t *testing.T) {
	handler := NewCurrencyHandler(&fakeConversionUsecase{
		convert: func(input *conversiondto.ConvertInput) (*conversiondto.ConvertOutput, error) {
			require.Equal(t, "100", input.Amount)
			require.Equal(t, "USD", input.FromCurrency)
			require.Equal(t, "EUR", input.ToCurrency)
			return &conversiondto.ConvertOutput{
				Amount:       decimal.NewFromInt(100),
				FromCurrency: "USD",
				ToCurrency:   "EUR",
				Rate:         decimal.RequireFromString("0.925"),
				Result:       decimal.RequireFromString("92.50"),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/currency/convert/?amount=100&from=USD&to=EUR", nil)
	rec := httptest.NewRecorder()
	handler.Convert(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"amount":100,"from":"USD","to":"EUR","rate":0.925,"result":92.5}`, rec.Body.String())
}

func TestCurrencyConvertHandlerValidationError(t *testing.T) {
	handler := NewCurrencyHandler(&fakeConversionUsecase{
		convert: func(input *conversiondto.ConvertInput) (*conversiondto.ConvertOutput, error) {
			return nil, fmt.Errorf("%w: invalid amount format", domain.ErrValidation)
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/currency/convert/?amount=ten&from=USD&to=EUR", nil)
	rec := httptest.NewRecorder()
	handler.Convert(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid amount format")
}

type fakeLedgerUsecase struct {
	usecase.LedgerUsecase
}

func TestSummaryHandlerRejectsBadWindow(t *testing.T) {
	handler := NewTrackerHandler(&fakeLedgerUsecase{})

	for _, days := range []string{"0", "-3", "week"} {
		req := httptest.NewRequest(http.MethodGet, "/tracker/expenses/summary/?days="+days, nil)
		rec := httptest.NewRecorder()
		handler.Summary(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "days=%s", days)
	}
}
