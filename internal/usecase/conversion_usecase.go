package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/kafka"
	"github.com/wetrack/wetrack-backend/internal/infrastructure/metrics"
	conversiondto "github.com/wetrack/wetrack-backend/internal/usecase/dto/conversion"
)

type ConversionUsecase interface {
	Convert(ctx context.Context, input *conversiondto.ConvertInput) (*conversiondto.ConvertOutput, error)
	ConvertForUser(ctx context.Context, userID string, input *conversiondto.ConvertInput) (*domain.ConversionRecord, error)
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
	GetCurrencies(ctx context.Context) (map[string]string, error)
	GetHistory(userID string, filter domain.ConversionFilter) ([]*domain.ConversionRecord, error)
}

type DefaultConversionUsecase struct {
	ConversionRepo domain.ConversionRepository
	RateRepo       domain.ExchangeRateRepository
	Provider       domain.RateProvider
	Publisher      domain.Publisher
	EventTopic     string
	Metrics        *metrics.ConversionMetrics
}

func NewDefaultConversionUsecase(
	conversionRepo domain.ConversionRepository,
	rateRepo domain.ExchangeRateRepository,
	provider domain.RateProvider,
	publisher domain.Publisher,
	eventTopic string,
	conversionMetrics *metrics.ConversionMetrics) *DefaultConversionUsecase {

	return &DefaultConversionUsecase{
		ConversionRepo: conversionRepo,
		RateRepo:       rateRepo,
		Provider:       provider,
		Publisher:      publisher,
		EventTopic:     eventTopic,
		Metrics:        conversionMetrics,
	}
}

// Convert validates the input, asks the provider once and returns the
// normalized quote. Nothing is persisted on this path.
func (uc *DefaultConversionUsecase) Convert(ctx context.Context, input *conversiondto.ConvertInput) (*conversiondto.ConvertOutput, error) {
	amount, from, to, err := uc.validate(input)
	if err != nil {
		return nil, err
	}

	quote, err := uc.Provider.Convert(ctx, from, to, amount)
	if err != nil {
		uc.Metrics.ObserveProviderRequest("convert", "error")
		return nil, err
	}
	uc.Metrics.ObserveProviderRequest("convert", "ok")

	uc.snapshotRate(from, to, quote.Rate)

	return &conversiondto.ConvertOutput{
		Amount:       amount,
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         quote.Rate,
		Result:       quote.ConvertedAmount,
	}, nil
}

// ConvertForUser runs the same flow and appends a ConversionRecord owned by
// the user. Persistence happens only after a successful provider response, so
// a provider failure never leaves a partial row.
func (uc *DefaultConversionUsecase) ConvertForUser(ctx context.Context, userID string, input *conversiondto.ConvertInput) (*domain.ConversionRecord, error) {
	output, err := uc.Convert(ctx, input)
	if err != nil {
		uc.Metrics.ObserveConversion("failed")
		return nil, err
	}

	record := &domain.ConversionRecord{
		ID:              uuid.New().String(),
		UserID:          userID,
		FromCurrency:    output.FromCurrency,
		ToCurrency:      output.ToCurrency,
		Amount:          output.Amount,
		ConvertedAmount: output.Result,
		Rate:            output.Rate,
		Timestamp:       time.Now().UTC(),
	}

	if err := uc.ConversionRepo.CreateConversion(record); err != nil {
		uc.Metrics.ObserveConversion("failed")
		return nil, err
	}
	uc.Metrics.ObserveConversion("ok")

	if uc.Publisher != nil {
		if err := kafka.PublishConversion(uc.Publisher, uc.EventTopic, kafka.NewConversionEvent(record)); err != nil {
			slog.Warn("failed to publish conversion event", "record_id", record.ID, "error", err.Error())
		}
	}

	return record, nil
}

func (uc *DefaultConversionUsecase) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from, err := normalizeCurrency(from)
	if err != nil {
		return decimal.Zero, err
	}
	to, err = normalizeCurrency(to)
	if err != nil {
		return decimal.Zero, err
	}

	rate, err := uc.Provider.FetchRate(ctx, from, to)
	if err != nil {
		uc.Metrics.ObserveProviderRequest("fetch-one", "error")
		return decimal.Zero, err
	}
	uc.Metrics.ObserveProviderRequest("fetch-one", "ok")

	uc.snapshotRate(from, to, rate)
	return rate, nil
}

func (uc *DefaultConversionUsecase) GetCurrencies(ctx context.Context) (map[string]string, error) {
	currencies, err := uc.Provider.Currencies(ctx)
	if err != nil {
		uc.Metrics.ObserveProviderRequest("currencies", "error")
		return nil, err
	}
	uc.Metrics.ObserveProviderRequest("currencies", "ok")
	return currencies, nil
}

func (uc *DefaultConversionUsecase) GetHistory(userID string, filter domain.ConversionFilter) ([]*domain.ConversionRecord, error) {
	return uc.ConversionRepo.GetConversionsByUserID(userID, filter)
}

func (uc *DefaultConversionUsecase) validate(input *conversiondto.ConvertInput) (decimal.Decimal, string, string, error) {
	if strings.TrimSpace(input.Amount) == "" {
		return decimal.Zero, "", "", fmt.Errorf("%w: amount is required", domain.ErrValidation)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(input.Amount))
	if err != nil {
		return decimal.Zero, "", "", fmt.Errorf("%w: invalid amount format", domain.ErrValidation)
	}
	if amount.IsNegative() {
		return decimal.Zero, "", "", fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}

	from, err := normalizeCurrency(input.FromCurrency)
	if err != nil {
		return decimal.Zero, "", "", err
	}
	to, err := normalizeCurrency(input.ToCurrency)
	if err != nil {
		return decimal.Zero, "", "", err
	}

	return amount.Round(2), from, to, nil
}

// snapshotRate refreshes the best-effort cache row. A zero rate (zero-amount
// conversion) carries no information, and a cache failure never fails the
// request.
func (uc *DefaultConversionUsecase) snapshotRate(from, to string, rate decimal.Decimal) {
	if uc.RateRepo == nil || !rate.IsPositive() {
		return
	}
	err := uc.RateRepo.UpsertRate(&domain.ExchangeRate{
		BaseCurrency:   from,
		TargetCurrency: to,
		Rate:           rate,
		LastUpdated:    time.Now().UTC(),
	})
	if err != nil {
		slog.Warn("failed to snapshot exchange rate", "pair", from+"/"+to, "error", err.Error())
	}
}

func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: currency code must be 3 letters", domain.ErrValidation)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: currency code must be 3 letters", domain.ErrValidation)
		}
	}
	return code, nil
}
