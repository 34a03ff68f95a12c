package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestNewCloudEvent(t *testing.T) {
	evt, err := NewCloudEvent("service-navigation", "safety.report.submitted", samplePayload{Name: "x", Count: 3})

	require.NoError(t, err)
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, "service-navigation", evt.Source)
	assert.Equal(t, "safety.report.submitted", evt.Type)
	assert.Equal(t, "application/json", evt.ContentType)
	assert.False(t, evt.Time.IsZero())

	var out samplePayload
	require.NoError(t, evt.ParseData(&out))
	assert.Equal(t, samplePayload{Name: "x", Count: 3}, out)
}

func TestCloudEvent_RoundTripsThroughEnvelope(t *testing.T) {
	evt, err := NewCloudEvent("src", "type", samplePayload{Name: "y", Count: 1})
	require.NoError(t, err)

	wire, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded CloudEvent
	require.NoError(t, json.Unmarshal(wire, &decoded))
	assert.Equal(t, evt.ID, decoded.ID)

	var out samplePayload
	require.NoError(t, decoded.ParseData(&out))
	assert.Equal(t, "y", out.Name)
}

func TestParseCloudEvent(t *testing.T) {
	evt, err := NewCloudEvent("src", "type", samplePayload{Name: "w", Count: 2})
	require.NoError(t, err)
	wire, err := json.Marshal(evt)
	require.NoError(t, err)

	decoded, err := ParseCloudEvent(wire)
	require.NoError(t, err)
	assert.Equal(t, evt.ID, decoded.ID)
	assert.Equal(t, "type", decoded.Type)

	_, err = ParseCloudEvent([]byte("not json"))
	assert.Error(t, err)
}

func TestCloudEvent_ParseDataTypeMismatch(t *testing.T) {
	evt, err := NewCloudEvent("src", "type", samplePayload{Name: "z"})
	require.NoError(t, err)

	var wrong []string
	assert.Error(t, evt.ParseData(&wrong))
}
