package models

import (
	"time"
)

// IncidentType - закрытый набор типов инцидентов
type IncidentType string

const (
	IncidentMedical IncidentType = "Medical"
	IncidentFire    IncidentType = "Fire"
	IncidentPolice  IncidentType = "Police"
	IncidentOther   IncidentType = "Other"
)

// OpCenStatus - состояние передачи инцидента конкретному OpCen
type OpCenStatus string

const (
	OpCenIdle       OpCenStatus = "idle"
	OpCenConnecting OpCenStatus = "connecting"
	OpCenConnected  OpCenStatus = "connected"
)

// Valid сообщает, входит ли статус в допустимый набор
func (s OpCenStatus) Valid() bool {
	switch s {
	case OpCenIdle, OpCenConnecting, OpCenConnected:
		return true
	}
	return false
}

// ResponderStatus - статус выездной бригады
type ResponderStatus string

const (
	ResponderEnroute  ResponderStatus = "enroute"
	ResponderOnScene  ResponderStatus = "onscene"
	ResponderFacility ResponderStatus = "facility"
	ResponderRTB      ResponderStatus = "rtb"
)

// Incident хранит только поля координации; запись инцидента принадлежит основному бэкенду
type Incident struct {
	ID              string           `json:"id"`
	IncidentType    IncidentType     `json:"incident_type"`
	Description     string           `json:"description"`
	DispatcherID    string           `json:"dispatcher_id,omitempty"`
	OpCenID         string           `json:"opcen_id,omitempty"`
	OpCenStatus     OpCenStatus      `json:"opcen_status"`
	ResponderStatus *ResponderStatus `json:"responder_status,omitempty"`
	IsVerified      bool             `json:"is_verified"`
	IsAccepted      bool             `json:"is_accepted"`
	IsResolved      bool             `json:"is_resolved"`
	IsFinished      bool             `json:"is_finished"`
	AcceptedAt      *time.Time       `json:"accepted_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// HasOpCen сообщает, принял ли инцидент OpCen. OpCen, отклонивший запрос,
// назначенным не считается.
func (i *Incident) HasOpCen() bool {
	return i.OpCenID != "" && i.OpCenStatus == OpCenConnected
}

// SinceCreated возвращает время с момента создания инцидента
func (i *Incident) SinceCreated(now time.Time) time.Duration {
	if i.CreatedAt.IsZero() || now.Before(i.CreatedAt) {
		return 0
	}
	return now.Sub(i.CreatedAt)
}

// SinceAccepted возвращает время с момента принятия, ноль если инцидент не принят
func (i *Incident) SinceAccepted(now time.Time) time.Duration {
	if i.AcceptedAt == nil || now.Before(*i.AcceptedAt) {
		return 0
	}
	return now.Sub(*i.AcceptedAt)
}
