package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_ZeroValueIsUnknown(t *testing.T) {
	var s Status
	assert.Equal(t, StatusUnknown, s)
	assert.Equal(t, "UNKNOWN", s.String())
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		parsed, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := ParseStatus(" suspected inactive ")
	require.NoError(t, err)
	assert.Equal(t, StatusSuspectedInactive, parsed)

	_, err = ParseStatus("RETIRED")
	assert.Error(t, err)
}

func TestStatus_JSON(t *testing.T) {
	type payload struct {
		Status Status `json:"status"`
	}

	raw, err := json.Marshal(payload{Status: StatusConfirmedInactive})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"CONFIRMED INACTIVE"}`, string(raw))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"status":"ACTIVE"}`), &decoded))
	assert.Equal(t, StatusActive, decoded.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"MAYBE"}`), &decoded))
}

func TestParseContactMethod(t *testing.T) {
	m, err := ParseContactMethod("email")
	require.NoError(t, err)
	assert.Equal(t, ContactEmail, m)

	m, err = ParseContactMethod("SMS")
	require.NoError(t, err)
	assert.Equal(t, ContactSMS, m)

	_, err = ParseContactMethod("pigeon")
	assert.Error(t, err)
}

func TestParseCheckInResponse(t *testing.T) {
	tests := map[string]CheckInResponse{
		"confirmed_active":   ResponseConfirmedActive,
		"CONFIRMED_INACTIVE": ResponseConfirmedInactive,
		"no_response":        ResponseNone,
	}
	for raw, want := range tests {
		got, err := ParseCheckInResponse(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, want.String(), got.String())
	}

	_, err := ParseCheckInResponse("maybe")
	assert.Error(t, err)
}
