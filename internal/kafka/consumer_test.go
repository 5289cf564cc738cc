package kafka

import (
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestDecodePurchaseEvent(t *testing.T) {
	expires := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	msg := kafkaGo.Message{Value: []byte(`{
		"type": "purchase_created",
		"token": "tok-1",
		"offer_id": 7,
		"emission_tons": 0.73,
		"cost_cents": 5840,
		"currency": "EUR",
		"email": "guest@example.com",
		"status": "PENDING",
		"expires_at": "2026-08-29T12:00:00Z"
	}`)}

	event, err := decodePurchaseEvent(msg)

	assert.NoError(t, err)
	assert.Equal(t, "purchase_created", event.Type)
	assert.Equal(t, "tok-1", event.Token)
	assert.Equal(t, int64(7), event.OfferID)
	assert.InDelta(t, 0.73, event.EmissionTons, 0.0001)
	assert.Equal(t, "guest@example.com", event.Email)
	assert.True(t, expires.Equal(event.ExpiresAt))
}

func TestDecodePurchaseEvent_MalformedPayload(t *testing.T) {
	_, err := decodePurchaseEvent(kafkaGo.Message{Value: []byte("{not json")})

	assert.Error(t, err)
}

func TestDecodePurchaseEvent_MissingToken(t *testing.T) {
	_, err := decodePurchaseEvent(kafkaGo.Message{Value: []byte(`{"type": "purchase_created"}`)})

	assert.Error(t, err)
}
