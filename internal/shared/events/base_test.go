package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntegrationEvent(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("CST", -6*3600))
	payload := RequestVerified{Collection: "cfe_requests", RequestID: "req-1"}

	evt, err := NewIntegrationEvent(RequestVerifiedType, "req-1", payload, ts)
	require.NoError(t, err)

	assert.Equal(t, RequestVerifiedType, evt.Type)
	assert.Equal(t, "req-1", evt.PartitionKey())
	assert.Equal(t, time.UTC, evt.Timestamp.Location())

	var decoded RequestVerified
	require.NoError(t, json.Unmarshal(evt.Data, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewIntegrationEvent_UnserializablePayload(t *testing.T) {
	_, err := NewIntegrationEvent(RequestCreatedType, "k", map[string]interface{}{"ch": make(chan int)}, time.Now())
	assert.Error(t, err)
}

func TestNewRequestCreated_OnlyContactFields(t *testing.T) {
	evt := NewRequestCreated("email_recovery_requests", "req-9", map[string]interface{}{
		"id":               "req-9",
		"user_name":        "Doña Rosa",
		"phone":            "5512345678",
		"curp":             "GOML920101MDFRRS09",
		"email_to_recover": "abuela@hotmail.com",
		"birth_date":       "10/10/1945",
	})

	assert.Equal(t, map[string]string{"user_name": "Doña Rosa", "phone": "5512345678"}, evt.Contact)

	data, err := json.Marshal(evt)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "GOML920101MDFRRS09")
	assert.NotContains(t, string(data), "10/10/1945")

	empty := NewRequestCreated("status_checks", "req-10", map[string]interface{}{"client_name": "smoke"})
	assert.Nil(t, empty.Contact)
}
