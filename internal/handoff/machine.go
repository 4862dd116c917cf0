package handoff

import (
	"errors"
	"fmt"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/models"
)

var (
	// ErrIllegalTransition - переход не предусмотрен таблицей; состояние не меняется
	ErrIllegalTransition = errors.New("handoff: illegal transition")
	ErrUnknownIncident   = errors.New("handoff: incident is not tracked")
	ErrWrongRole         = errors.New("handoff: operation not available for this role")
)

// Trigger - причина перехода машины состояний
type Trigger string

const (
	TriggerRequest    Trigger = "request"
	TriggerConnecting Trigger = "inbound_connecting"
	TriggerConnected  Trigger = "inbound_connected"
	TriggerIdle       Trigger = "inbound_idle"
	TriggerClose      Trigger = "close"
)

// transitions - полная таблица переходов. Отсутствующая пара (состояние, триггер)
// означает недопустимый переход.
var transitions = map[models.OpCenStatus]map[Trigger]models.OpCenStatus{
	models.OpCenIdle: {
		TriggerRequest:    models.OpCenConnecting,
		TriggerConnecting: models.OpCenConnecting,
		TriggerConnected:  models.OpCenIdle,
		TriggerIdle:       models.OpCenIdle,
	},
	models.OpCenConnecting: {
		TriggerRequest:    models.OpCenConnecting,
		TriggerConnecting: models.OpCenConnecting,
		TriggerConnected:  models.OpCenConnected,
		TriggerIdle:       models.OpCenIdle,
		TriggerClose:      models.OpCenIdle,
	},
	models.OpCenConnected: {
		TriggerRequest:    models.OpCenConnecting,
		TriggerConnecting: models.OpCenConnecting,
		TriggerConnected:  models.OpCenConnected,
		TriggerIdle:       models.OpCenIdle,
		TriggerClose:      models.OpCenIdle,
	},
}

// Next возвращает состояние после триггера
func Next(from models.OpCenStatus, trigger Trigger) (models.OpCenStatus, error) {
	to, ok := transitions[from][trigger]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, trigger, from)
	}
	return to, nil
}

// Snapshot - состояние передачи инцидента, которое читает UI
type Snapshot struct {
	IncidentID     string             `json:"incidentId"`
	Status         models.OpCenStatus `json:"status"`
	SelectedOpCen  string             `json:"selectedOpCenId,omitempty"`
	OpCenName      string             `json:"opCenName,omitempty"`
	RequestID      string             `json:"requestId,omitempty"`
	DispatcherID   string             `json:"dispatcherId,omitempty"`
	ConnectingTime time.Time          `json:"connectingTime,omitempty"`
	HandedOffTo    string             `json:"handedOffTo,omitempty"`
	ChannelID      string             `json:"channelId,omitempty"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// Connecting - индикатор "подключение" для UI
func (s Snapshot) Connecting() bool {
	return s.Status == models.OpCenConnecting
}

// machine держит единственную незавершенную попытку (инцидент, OpCen)
type machine struct {
	snap    Snapshot
	details models.IncidentDetails
	// watched: UI держит инцидент открытым, машина не удаляется после завершения
	watched bool
}

func newMachine(incidentID string, now time.Time) *machine {
	return &machine{snap: Snapshot{IncidentID: incidentID, Status: models.OpCenIdle, UpdatedAt: now}}
}

func (m *machine) fire(trigger Trigger, now time.Time) (models.OpCenStatus, error) {
	to, err := Next(m.snap.Status, trigger)
	if err != nil {
		return m.snap.Status, err
	}
	m.snap.Status = to
	m.snap.UpdatedAt = now
	return to, nil
}

// settled: попытки нет, машину можно удалить
func (m *machine) settled() bool {
	return !m.watched && m.snap.Status == models.OpCenIdle
}

// clearPending снимает индикатор подключения и выбранный OpCen
func (m *machine) clearPending() {
	m.snap.SelectedOpCen = ""
	m.snap.OpCenName = ""
	m.snap.RequestID = ""
	m.snap.DispatcherID = ""
	m.snap.ConnectingTime = time.Time{}
	m.details = models.IncidentDetails{}
}
