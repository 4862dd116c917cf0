package events

import (
	"encoding/json"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/models"
)

type Registration struct {
	ID string `json:"id" validate:"required"`
}

// OpCenConnect - исходящий запрос диспетчера на передачу инцидента
type OpCenConnect struct {
	RequestID       string                 `json:"requestId" validate:"required"`
	IncidentID      string                 `json:"incidentId" validate:"required"`
	OpCenID         string                 `json:"opCenId" validate:"required"`
	DispatcherID    string                 `json:"dispatcherId" validate:"required"`
	ConnectingTime  time.Time              `json:"connectingTime"`
	IncidentDetails models.IncidentDetails `json:"incidentDetails"`
}

// OpCenStatus - рассылка координатора о состоянии передачи
type OpCenStatus struct {
	IncidentID          string              `json:"incidentId" validate:"required"`
	Status              models.OpCenStatus  `json:"status" validate:"required,oneof=idle connecting connected"`
	RequestID           string              `json:"requestId,omitempty"`
	OpCenID             string              `json:"opCenId,omitempty"`
	OpCenName           string              `json:"opCenName,omitempty"`
	DispatcherID        string              `json:"dispatcherId,omitempty"`
	ChannelID           string              `json:"channelId,omitempty"`
	IncidentType        models.IncidentType `json:"incidentType,omitempty"`
	IncidentDescription string              `json:"incidentDescription,omitempty"`
	Incident            json.RawMessage     `json:"incident,omitempty"`
}

// OpCenResolution - ответ OpCen на входящий запрос
type OpCenResolution struct {
	IncidentID   string `json:"incidentId" validate:"required"`
	OpCenID      string `json:"opCenId" validate:"required"`
	DispatcherID string `json:"dispatcherId" validate:"required"`
	ChannelID    string `json:"channelId,omitempty"`
}

type Rejoin struct {
	IncidentID   string `json:"incidentId" validate:"required"`
	DispatcherID string `json:"dispatcherId" validate:"required"`
	OpCenID      string `json:"opCenId" validate:"required"`
}

type Availability struct {
	Status string `json:"status" validate:"required,oneof=available unavailable"`
}

type ResponderAssignment struct {
	IncidentID  string `json:"incidentId" validate:"required"`
	ResponderID string `json:"responderId" validate:"required"`
}

// IncidentCounts - снимок счетчиков инцидентов; nil означает "категория отсутствует в обновлении"
type IncidentCounts struct {
	Medical *int `json:"medical,omitempty" validate:"omitempty,gte=0"`
	Fire    *int `json:"fire,omitempty" validate:"omitempty,gte=0"`
	Police  *int `json:"police,omitempty" validate:"omitempty,gte=0"`
	General *int `json:"general,omitempty" validate:"omitempty,gte=0"`
}

type ResponderCounts struct {
	Fire    *int `json:"fire,omitempty" validate:"omitempty,gte=0"`
	Medical *int `json:"medical,omitempty" validate:"omitempty,gte=0"`
	Police  *int `json:"police,omitempty" validate:"omitempty,gte=0"`
}

type CallRingRequest struct {
	CallID              string              `json:"callId" validate:"required"`
	CreatedBy           string              `json:"createdBy" validate:"required"`
	Members             []models.CallMember `json:"members" validate:"required,min=1"`
	RingTimeoutMs       int64               `json:"ringTimeoutMs"`
	AutoCancelTimeoutMs int64               `json:"autoCancelTimeoutMs"`
}

type CallJoinRequest struct {
	CallID string `json:"callId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

type CallLeaveRequest struct {
	CallID string             `json:"callId" validate:"required"`
	UserID string             `json:"userId" validate:"required"`
	Reason models.LeaveReason `json:"reason" validate:"required,oneof=cancel decline"`
}

// CallState - внешнее изменение состояния звонка
type CallState struct {
	CallID    string              `json:"callId" validate:"required"`
	State     models.CallingState `json:"state" validate:"required,oneof=idle unknown joining ringing migrating reconnecting reconnecting_failed offline joined left"`
	CreatedBy string              `json:"createdBy,omitempty"`
	Members   []models.CallMember `json:"members,omitempty"`
}
