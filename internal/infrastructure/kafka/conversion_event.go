package kafka

import (
	"encoding/json"
	"time"

	"github.com/wetrack/wetrack-backend/internal/domain"
)

// ConversionEvent mirrors a persisted ConversionRecord on the wire.
type ConversionEvent struct {
	RecordID        string    `json:"record_id"`
	UserID          string    `json:"user_id"`
	FromCurrency    string    `json:"from_currency"`
	ToCurrency      string    `json:"to_currency"`
	Amount          string    `json:"amount"`
	ConvertedAmount string    `json:"converted_amount"`
	Rate            string    `json:"rate"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewConversionEvent(record *domain.ConversionRecord) ConversionEvent {
	return ConversionEvent{
		RecordID:        record.ID,
		UserID:          record.UserID,
		FromCurrency:    record.FromCurrency,
		ToCurrency:      record.ToCurrency,
		Amount:          record.Amount.StringFixed(2),
		ConvertedAmount: record.ConvertedAmount.StringFixed(2),
		Rate:            record.Rate.String(),
		Timestamp:       record.Timestamp,
	}
}

// PublishConversion marshals the event and publishes it keyed by user id.
func PublishConversion(pub domain.Publisher, topic string, event ConversionEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return pub.Publish(topic, domain.Message{Key: []byte(event.UserID), Value: v})
}
