package v1

import (
	"time"
)

// UpsertIncidentRequest DTO синхронизации полей координации инцидента
// @Description DTO синхронизации полей координации инцидента
type UpsertIncidentRequest struct {
	IncidentType    string     `json:"incident_type" validate:"required,oneof=Medical Fire Police Other"`
	Description     string     `json:"description,omitempty" validate:"max=2000"`
	DispatcherID    string     `json:"dispatcher_id,omitempty"`
	OpCenID         string     `json:"opcen_id,omitempty"`
	OpCenStatus     string     `json:"opcen_status,omitempty" validate:"omitempty,oneof=idle connecting connected"`
	ResponderStatus string     `json:"responder_status,omitempty" validate:"omitempty,oneof=enroute onscene facility rtb"`
	IsVerified      bool       `json:"is_verified"`
	IsAccepted      bool       `json:"is_accepted"`
	IsResolved      bool       `json:"is_resolved"`
	IsFinished      bool       `json:"is_finished"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                   string           `json:"id"`
	IncidentType         string           `json:"incident_type"`
	Description          string           `json:"description,omitempty"`
	DispatcherID         string           `json:"dispatcher_id,omitempty"`
	OpCenID              string           `json:"opcen_id,omitempty"`
	OpCenStatus          string           `json:"opcen_status"`
	ResponderStatus      string           `json:"responder_status,omitempty"`
	IsVerified           bool             `json:"is_verified"`
	IsAccepted           bool             `json:"is_accepted"`
	IsResolved           bool             `json:"is_resolved"`
	IsFinished           bool             `json:"is_finished"`
	AcceptedAt           *time.Time       `json:"accepted_at,omitempty"`
	SinceCreatedSeconds  int64            `json:"since_created_seconds"`
	SinceAcceptedSeconds int64            `json:"since_accepted_seconds"`
	Handoff              *HandoffResponse `json:"handoff,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// ConnectRequest DTO запроса на передачу инцидента OpCen
// @Description DTO запроса на передачу инцидента OpCen
type ConnectRequest struct {
	OpCenID      string         `json:"opcen_id" validate:"required"`
	IncidentType string         `json:"incident_type" validate:"required,oneof=Medical Fire Police Other"`
	Description  string         `json:"description,omitempty" validate:"max=2000"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// ConnectResponse DTO принятого запроса на передачу
// @Description DTO принятого запроса на передачу
type ConnectResponse struct {
	RequestID      string    `json:"request_id"`
	IncidentID     string    `json:"incident_id"`
	OpCenID        string    `json:"opcen_id"`
	DispatcherID   string    `json:"dispatcher_id"`
	ConnectingTime time.Time `json:"connecting_time"`
}

// HandoffResponse DTO состояния передачи инцидента
// @Description DTO состояния передачи инцидента
type HandoffResponse struct {
	IncidentID     string     `json:"incident_id"`
	Status         string     `json:"status"`
	Connecting     bool       `json:"connecting"`
	SelectedOpCen  string     `json:"selected_opcen_id,omitempty"`
	OpCenName      string     `json:"opcen_name,omitempty"`
	RequestID      string     `json:"request_id,omitempty"`
	DispatcherID   string     `json:"dispatcher_id,omitempty"`
	ConnectingTime *time.Time `json:"connecting_time,omitempty"`
	HandedOffTo    string     `json:"handed_off_to,omitempty"`
	ChannelID      string     `json:"channel_id,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HandoffEventResponse DTO записи журнала передачи
// @Description DTO записи журнала передачи
type HandoffEventResponse struct {
	ID         int64     `json:"id"`
	OpCenID    string    `json:"opcen_id,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
}

// RejoinResponse DTO результата повторного подключения
// @Description DTO результата повторного подключения
type RejoinResponse struct {
	Rejoined bool `json:"rejoined"`
}

// ResolveIncidentRequest DTO ответа OpCen на запрос передачи
// @Description DTO ответа OpCen на запрос передачи
type ResolveIncidentRequest struct {
	ChannelID string `json:"channel_id,omitempty"`
}

// AssignResponderRequest DTO назначения бригады
// @Description DTO назначения бригады
type AssignResponderRequest struct {
	ResponderID string `json:"responder_id" validate:"required"`
}

// AvailabilityRequest DTO переключения доступности OpCen
// @Description DTO переключения доступности OpCen
type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// CallMemberDTO участник звонка
// @Description участник звонка
type CallMemberDTO struct {
	UserID string `json:"user_id" validate:"required"`
	Name   string `json:"name,omitempty"`
}

// RingCallRequest DTO создания звонка
// @Description DTO создания звонка
type RingCallRequest struct {
	Members []CallMemberDTO `json:"members" validate:"required,min=1,dive"`
}

// CallResponse DTO звонка
// @Description DTO звонка
type CallResponse struct {
	ID                       string          `json:"id"`
	CreatedBy                string          `json:"created_by"`
	CreatedByMe              bool            `json:"created_by_me"`
	Members                  []CallMemberDTO `json:"members"`
	State                    string          `json:"state"`
	JoinedByMe               bool            `json:"joined_by_me"`
	RingTimeoutSeconds       int64           `json:"ring_timeout_seconds"`
	AutoCancelTimeoutSeconds int64           `json:"auto_cancel_timeout_seconds"`
	CreatedAt                time.Time       `json:"created_at"`
}

// DeclineCallResponse DTO выхода из звонка
// @Description DTO выхода из звонка
type DeclineCallResponse struct {
	Reason string `json:"reason"`
}

// HealthResponse DTO состояния консоли
// @Description DTO состояния консоли
type HealthResponse struct {
	Status     string `json:"status"`
	Connected  bool   `json:"connected"`
	Role       string `json:"role"`
	QueueDepth int    `json:"queue_depth"`
}
