package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIncident_ElapsedDurations(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	accepted := created.Add(4 * time.Minute)
	now := created.Add(10 * time.Minute)

	inc := &Incident{ID: "INC-1", CreatedAt: created}
	assert.Equal(t, 10*time.Minute, inc.SinceCreated(now))
	assert.Zero(t, inc.SinceAccepted(now))

	inc.AcceptedAt = &accepted
	assert.Equal(t, 6*time.Minute, inc.SinceAccepted(now))
	assert.Zero(t, inc.SinceAccepted(created)) // часы "назад" не дают отрицательных значений
}

func TestCall_IsCreatedByMe(t *testing.T) {
	c := &Call{ID: "c1", CreatedBy: "disp-1", Members: []CallMember{{UserID: "disp-1"}, {UserID: "resp-9", Name: "Unit 9"}}}
	assert.True(t, c.IsCreatedByMe("disp-1"))
	assert.False(t, c.IsCreatedByMe("resp-9"))

	m, ok := c.Member("resp-9")
	assert.True(t, ok)
	assert.Equal(t, "Unit 9", m.Name)
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, OpCenConnecting.Valid())
	assert.False(t, OpCenStatus("pending").Valid())
	assert.True(t, CallReconnectingFailed.Valid())
	assert.False(t, CallingState("ringing ").Valid())
}

func TestIncident_HasOpCen(t *testing.T) {
	assert.False(t, (&Incident{ID: "INC-1"}).HasOpCen())
	assert.True(t, (&Incident{ID: "INC-1", OpCenID: "OC-1", OpCenStatus: OpCenConnected}).HasOpCen())
	// Отказавший или еще не ответивший OpCen не считается назначенным
	assert.False(t, (&Incident{ID: "INC-1", OpCenID: "OC-1", OpCenStatus: OpCenIdle}).HasOpCen())
	assert.False(t, (&Incident{ID: "INC-1", OpCenID: "OC-1", OpCenStatus: OpCenConnecting}).HasOpCen())
}
