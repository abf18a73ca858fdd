package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wetrack/wetrack-backend/internal/domain"
	conversiondto "github.com/wetrack/wetrack-backend/internal/usecase/dto/conversion"
)

type fakeProvider struct {
	quote      *domain.Quote
	rate       decimal.Decimal
	currencies map[string]string
	err        error

	lastFrom   string
	lastTo     string
	lastAmount decimal.Decimal
	calls      int
}

func (p *fakeProvider) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.Quote, error) {
	p.calls++
	p.lastFrom, p.lastTo, p.lastAmount = from, to, amount
	if p.err != nil {
		return nil, p.err
	}
	return p.quote, nil
}

func (p *fakeProvider) FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	p.calls++
	p.lastFrom, p.lastTo = from, to
	if p.err != nil {
		return decimal.Zero, p.err
	}
	return p.rate, nil
}

func (p *fakeProvider) Currencies(ctx context.Context) (map[string]string, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.currencies, nil
}

type fakeConversionRepo struct {
	records []*domain.ConversionRecord
	err     error
}

func (r *fakeConversionRepo) CreateConversion(record *domain.ConversionRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

func (r *fakeConversionRepo) GetConversionsByUserID(userID string, filter domain.ConversionFilter) ([]*domain.ConversionRecord, error) {
	var out []*domain.ConversionRecord
	for _, record := range r.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

type fakeRateRepo struct {
	upserts []*domain.ExchangeRate
}

func (r *fakeRateRepo) UpsertRate(rate *domain.ExchangeRate) error {
	r.upserts = append(r.upserts, rate)
	return nil
}

func (r *fakeRateRepo) GetRate(baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	return nil, domain.ErrNotFound
}

func newConversionUsecase(provider *fakeProvider, conversionRepo *fakeConversionRepo, rateRepo *fakeRateRepo) *DefaultConversionUsecase {
	return NewDefaultConversionUsecase(conversionRepo, rateRepo, provider, nil, "", nil)
}

func TestConvertNormalizesInput(t *testing.T) {
	provider := &fakeProvider{quote: &domain.Quote{
		Rate:            decimal.RequireFromString("0.925"),
		ConvertedAmount: decimal.RequireFromString("92.50"),
	}}
	rateRepo := &fakeRateRepo{}
	uc := newConversionUsecase(provider, &fakeConversionRepo{}, rateRepo)

	output, err := uc.Convert(context.Background(), &conversiondto.ConvertInput{
		Amount:       " 100 ",
		FromCurrency: "usd",
		ToCurrency:   " eur",
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", provider.lastFrom)
	assert.Equal(t, "EUR", provider.lastTo)
	assert.Equal(t, "USD", output.FromCurrency)
	assert.Equal(t, "EUR", output.ToCurrency)
	assert.True(t, output.Result.Equal(decimal.RequireFromString("92.50")))
	assert.True(t, output.Rate.Equal(decimal.RequireFromString("0.925")))

	require.Len(t, rateRepo.upserts, 1)
	assert.Equal(t, "USD", rateRepo.upserts[0].BaseCurrency)
	assert.Equal(t, "EUR", rateRepo.upserts[0].TargetCurrency)
}

func TestConvertValidation(t *testing.T) {
	tests := []struct {
		name  string
		input conversiondto.ConvertInput
	}{
		{"empty amount", conversiondto.ConvertInput{Amount: "", FromCurrency: "USD", ToCurrency: "EUR"}},
		{"non-numeric amount", conversiondto.ConvertInput{Amount: "ten", FromCurrency: "USD", ToCurrency: "EUR"}},
		{"negative amount", conversiondto.ConvertInput{Amount: "-5", FromCurrency: "USD", ToCurrency: "EUR"}},
		{"short currency", conversiondto.ConvertInput{Amount: "5", FromCurrency: "US", ToCurrency: "EUR"}},
		{"numeric currency", conversiondto.ConvertInput{Amount: "5", FromCurrency: "USD", ToCurrency: "EU1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			uc := newConversionUsecase(provider, &fakeConversionRepo{}, &fakeRateRepo{})

			_, err := uc.Convert(context.Background(), &tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, provider.calls, "provider must not be called on invalid input")
		})
	}
}

func TestConvertZeroRateNotSnapshotted(t *testing.T) {
	provider := &fakeProvider{quote: &domain.Quote{Rate: decimal.Zero, ConvertedAmount: decimal.Zero}}
	rateRepo := &fakeRateRepo{}
	uc := newConversionUsecase(provider, &fakeConversionRepo{}, rateRepo)

	_, err := uc.Convert(context.Background(), &conversiondto.ConvertInput{
		Amount: "0", FromCurrency: "USD", ToCurrency: "EUR",
	})
	require.NoError(t, err)
	assert.Empty(t, rateRepo.upserts)
}

func TestConvertForUserPersistsRecord(t *testing.T) {
	provider := &fakeProvider{quote: &domain.Quote{
		Rate:            decimal.RequireFromString("0.925"),
		ConvertedAmount: decimal.RequireFromString("92.50"),
	}}
	conversionRepo := &fakeConversionRepo{}
	uc := newConversionUsecase(provider, conversionRepo, &fakeRateRepo{})

	record, err := uc.ConvertForUser(context.Background(), "user-1", &conversiondto.ConvertInput{
		Amount: "100", FromCurrency: "USD", ToCurrency: "EUR",
	})
	require.NoError(t, err)

	require.Len(t, conversionRepo.records, 1)
	stored := conversionRepo.records[0]
	assert.Equal(t, record.ID, stored.ID)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "USD", stored.FromCurrency)
	assert.Equal(t, "EUR", stored.ToCurrency)
	assert.True(t, stored.ConvertedAmount.Equal(stored.Amount.Mul(stored.Rate)),
		"converted %s != amount %s * rate %s", stored.ConvertedAmount, stored.Amount, stored.Rate)
	assert.False(t, stored.Timestamp.IsZero())
}

func TestConvertForUserProviderFailureWritesNothing(t *testing.T) {
	provider := &fakeProvider{err: domain.ErrProviderUnavailable}
	conversionRepo := &fakeConversionRepo{}
	uc := newConversionUsecase(provider, conversionRepo, &fakeRateRepo{})

	_, err := uc.ConvertForUser(context.Background(), "user-1", &conversiondto.ConvertInput{
		Amount: "100", FromCurrency: "USD", ToCurrency: "EUR",
	})
	require.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.Empty(t, conversionRepo.records, "a failed conversion must not leave a history row")
}

func TestGetRateNormalizesAndSnapshots(t *testing.T) {
	provider := &fakeProvider{rate: decimal.RequireFromString("1.2543")}
	rateRepo := &fakeRateRepo{}
	uc := newConversionUsecase(provider, &fakeConversionRepo{}, rateRepo)

	rate, err := uc.GetRate(context.Background(), "gbp", "usd ")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.2543")))
	assert.Equal(t, "GBP", provider.lastFrom)
	assert.Equal(t, "USD", provider.lastTo)
	require.Len(t, rateRepo.upserts, 1)
}

func TestGetHistoryScopedToUser(t *testing.T) {
	conversionRepo := &fakeConversionRepo{records: []*domain.ConversionRecord{
		{ID: "a", UserID: "user-1"},
		{ID: "b", UserID: "user-2"},
	}}
	uc := newConversionUsecase(&fakeProvider{}, conversionRepo, &fakeRateRepo{})

	records, err := uc.GetHistory("user-1", domain.ConversionFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].ID)
}
