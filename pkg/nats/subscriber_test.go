package nats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	data := []byte(`{"user_id":"5f0c7f0e-8c1b-4a52-9d0a-3b2f4f1f6c11","occurred_at":"2026-10-01T08:30:00Z"}`)

	event, err := DecodeEvent("events.SUBSCRIPTION_UPDATED", data)
	require.NoError(t, err)

	assert.Equal(t, "SUBSCRIPTION_UPDATED", event.EventType())
	assert.Equal(t, "5f0c7f0e-8c1b-4a52-9d0a-3b2f4f1f6c11", event.Payload()["user_id"])
	assert.True(t, event.Timestamp().Equal(time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)))
}

func TestDecodeEvent_NoTimestamp(t *testing.T) {
	before := time.Now()
	event, err := DecodeEvent("SUBSCRIPTION_UPDATED", []byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "SUBSCRIPTION_UPDATED", event.EventType())
	assert.False(t, event.Timestamp().Before(before))
}

func TestDecodeEvent_InvalidJSON(t *testing.T) {
	_, err := DecodeEvent("events.SUBSCRIPTION_UPDATED", []byte(`not json`))
	assert.Error(t, err)
}
