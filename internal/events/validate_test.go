package events

import (
	"encoding/json"
	"testing"

	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_OpCenStatus(t *testing.T) {
	raw := json.RawMessage(`{"incidentId":"INC-1","status":"connecting","opCenId":"OC-1","incidentType":"Fire"}`)

	ev, err := Decode[OpCenStatus](raw)
	require.NoError(t, err)
	assert.Equal(t, "INC-1", ev.IncidentID)
	assert.Equal(t, models.OpCenConnecting, ev.Status)
	assert.Equal(t, models.IncidentFire, ev.IncidentType)
}

func TestDecode_RejectsUnknownStatus(t *testing.T) {
	_, err := Decode[OpCenStatus](json.RawMessage(`{"incidentId":"INC-1","status":"pending"}`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "Status")
}

func TestDecode_RejectsMissingIncident(t *testing.T) {
	_, err := Decode[OpCenStatus](json.RawMessage(`{"status":"idle"}`))
	require.Error(t, err)
}

func TestDecode_EmptyPayload(t *testing.T) {
	_, err := Decode[CallState](nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "empty payload")
}

func TestDecode_PartialCounts(t *testing.T) {
	ev, err := Decode[ResponderCounts](json.RawMessage(`{"fire":3}`))
	require.NoError(t, err)
	require.NotNil(t, ev.Fire)
	assert.Equal(t, 3, *ev.Fire)
	assert.Nil(t, ev.Medical)
	assert.Nil(t, ev.Police)
}

func TestDecode_NegativeCountRejected(t *testing.T) {
	_, err := Decode[IncidentCounts](json.RawMessage(`{"medical":-1}`))
	require.Error(t, err)
}

func TestDecode_CallState(t *testing.T) {
	ev, err := Decode[CallState](json.RawMessage(`{"callId":"c-1","state":"reconnecting_failed"}`))
	require.NoError(t, err)
	assert.Equal(t, models.CallReconnectingFailed, ev.State)

	_, err = Decode[CallState](json.RawMessage(`{"callId":"c-1","state":"hanging"}`))
	require.Error(t, err)
}

func TestNewEnvelope_KeepsArgumentOrder(t *testing.T) {
	env, err := NewEnvelope(RequestResponderAssignment, ResponderAssignment{IncidentID: "INC-1", ResponderID: "R-2"}, "second")
	require.NoError(t, err)
	require.Len(t, env.Args, 2)
	assert.JSONEq(t, `{"incidentId":"INC-1","responderId":"R-2"}`, string(env.Payload()))
	assert.JSONEq(t, `"second"`, string(env.Args[1]))
}

func TestNewEnvelope_UnmarshalableArgument(t *testing.T) {
	_, err := NewEnvelope(CallRing, make(chan int))
	require.Error(t, err)
}
