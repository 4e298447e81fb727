package progress

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_WritesVersionedEnvelope(t *testing.T) {
	raw, err := Encode(Record{"caching": StatusCompleted})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, float64(FormatVersion), got["version"])
	assert.Equal(t, map[string]any{"caching": "completed"}, got["statuses"])
}

func TestEncode_NilRecord(t *testing.T) {
	raw, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"statuses":{}}`, raw)
}

func TestEncode_RejectsInvalidStatus(t *testing.T) {
	_, err := Encode(Record{"a": "finished"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDecode_RoundTrip(t *testing.T) {
	records := []Record{
		{},
		{"a": StatusLocked},
		{
			"scalability":     StatusCompleted,
			"cap-theorem":     StatusInProgress,
			"":                StatusNotStarted,
			"ünïcödé key":     StatusLocked,
			"version":         StatusCompleted,
			"with \"quotes\"": StatusInProgress,
		},
	}
	for _, r := range records {
		raw, err := Encode(r)
		require.NoError(t, err)

		res := Decode(raw)
		require.True(t, res.OK(), "decode %q: %v", raw, res.Err)
		assert.False(t, res.Legacy)
		assert.Equal(t, r, res.Record)
	}
}

func TestDecode_AcceptsLegacyShape(t *testing.T) {
	res := Decode(`{"caching":"completed","cdn":"in-progress"}`)
	require.True(t, res.OK(), "unexpected error: %v", res.Err)
	assert.True(t, res.Legacy)
	assert.Equal(t, Record{"caching": StatusCompleted, "cdn": StatusInProgress}, res.Record)
}

func TestDecode_LegacyEmptyObject(t *testing.T) {
	res := Decode(`{}`)
	require.True(t, res.OK())
	assert.Empty(t, res.Record)
	assert.NotNil(t, res.Record)
}

func TestDecode_LegacyIDNamedVersion(t *testing.T) {
	res := Decode(`{"version":"completed"}`)
	require.True(t, res.OK(), "unexpected error: %v", res.Err)
	assert.True(t, res.Legacy)
	assert.Equal(t, StatusCompleted, res.Record.Lookup("version"))
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not valid json{{"},
		{"empty string", ""},
		{"null", "null"},
		{"array", `["completed"]`},
		{"string", `"completed"`},
		{"unknown status literal", `{"a":"done"}`},
		{"non-string status", `{"a":3}`},
		{"envelope with bad status", `{"version":1,"statuses":{"a":"nope"}}`},
		{"envelope missing statuses", `{"version":1}`},
		{"envelope extra field", `{"version":1,"statuses":{},"extra":true}`},
		{"envelope zero version", `{"version":0,"statuses":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Decode(tt.raw)
			assert.False(t, res.OK(), "expected failure for %q", tt.raw)
			assert.Nil(t, res.Record)
		})
	}
}

func TestDecode_NewerVersionRejected(t *testing.T) {
	res := Decode(`{"version":2,"statuses":{"a":"completed"}}`)
	require.False(t, res.OK())
	assert.True(t, errors.Is(res.Err, ErrUnsupportedVersion))
}
