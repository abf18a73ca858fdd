package fastforex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wetrack/wetrack-backend/internal/domain"
)

const (
	ratePrecision   = 6
	amountPrecision = 2
)

// Client calls the FastForex HTTP API. One outbound request per method, no
// retries, no caching. Upstream failures of any kind map to
// domain.ErrProviderUnavailable; the API key never appears in returned errors.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type convertResponse struct {
	Base   string                     `json:"base"`
	Amount decimal.Decimal            `json:"amount"`
	Result map[string]decimal.Decimal `json:"result"`
}

type fetchOneResponse struct {
	Base   string          `json:"base"`
	Result json.RawMessage `json:"result"`
}

type currenciesResponse struct {
	Currencies map[string]string `json:"currencies"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Convert asks the /convert endpoint for amount units of from in to.
// The converted amount is the provider-reported figure; the rate is derived
// as result/amount, reported as zero for a zero amount rather than dividing.
func (c *Client) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.Quote, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	params.Set("amount", amount.String())

	body, err := c.get(ctx, "/convert", params)
	if err != nil {
		return nil, err
	}

	var payload convertResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.Error("fastforex returned malformed JSON", "endpoint", "/convert")
		return nil, fmt.Errorf("%w: malformed provider response", domain.ErrProviderUnavailable)
	}

	converted, ok := payload.Result[to]
	if !ok {
		slog.Error("fastforex response missing currency key", "endpoint", "/convert", "to", to)
		return nil, fmt.Errorf("%w: provider response missing %s result", domain.ErrProviderUnavailable, to)
	}

	rate := decimal.Zero
	if amount.IsPositive() {
		rate = converted.DivRound(amount, ratePrecision)
	}

	return &domain.Quote{
		Rate:            rate,
		ConvertedAmount: converted.Round(amountPrecision),
	}, nil
}

// FetchRate asks the /fetch-one endpoint for the from->to rate. The endpoint
// has answered with both {"result": {"USD": 1.25}} and {"result": 1.25} over
// time, so both shapes are accepted.
func (c *Client) FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)

	body, err := c.get(ctx, "/fetch-one", params)
	if err != nil {
		return decimal.Zero, err
	}

	var payload fetchOneResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.Error("fastforex returned malformed JSON", "endpoint", "/fetch-one")
		return decimal.Zero, fmt.Errorf("%w: malformed provider response", domain.ErrProviderUnavailable)
	}

	var byCurrency map[string]decimal.Decimal
	if err := json.Unmarshal(payload.Result, &byCurrency); err == nil {
		if rate, ok := byCurrency[to]; ok {
			return rate.Round(ratePrecision), nil
		}
		slog.Error("fastforex response missing currency key", "endpoint", "/fetch-one", "to", to)
		return decimal.Zero, fmt.Errorf("%w: provider response missing %s result", domain.ErrProviderUnavailable, to)
	}

	var rate decimal.Decimal
	if err := json.Unmarshal(payload.Result, &rate); err != nil {
		slog.Error("fastforex returned unexpected result shape", "endpoint", "/fetch-one")
		return decimal.Zero, fmt.Errorf("%w: unexpected provider response shape", domain.ErrProviderUnavailable)
	}
	return rate.Round(ratePrecision), nil
}

// Currencies lists the provider's supported currency codes and names.
func (c *Client) Currencies(ctx context.Context) (map[string]string, error) {
	body, err := c.get(ctx, "/currencies", url.Values{})
	if err != nil {
		return nil, err
	}

	var payload currenciesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.Error("fastforex returned malformed JSON", "endpoint", "/currencies")
		return nil, fmt.Errorf("%w: malformed provider response", domain.ErrProviderUnavailable)
	}
	if payload.Currencies == nil {
		return nil, fmt.Errorf("%w: provider response missing currencies", domain.ErrProviderUnavailable)
	}
	return payload.Currencies, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("api_key", c.apiKey)
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request", domain.ErrProviderUnavailable)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// The transport error text can carry the request URL, api key
		// included, so it stays out of both the log and the returned error.
		slog.Error("fastforex request failed", "endpoint", endpoint)
		return nil, fmt.Errorf("%w: request failed", domain.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("failed to read fastforex response", "endpoint", endpoint)
		return nil, fmt.Errorf("%w: failed to read response", domain.ErrProviderUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := providerMessage(body)
		slog.Error("fastforex returned error status", "endpoint", endpoint, "status", resp.StatusCode, "message", message)
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, message)
	}

	return body, nil
}

// providerMessage pulls a safe, human-readable message out of an error body.
func providerMessage(body []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return "currency conversion failed"
}
