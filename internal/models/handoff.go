package models

import "time"

// IncidentDetails - описание инцидента, прикладываемое к запросу на подключение
type IncidentDetails struct {
	IncidentType IncidentType   `json:"incidentType"`
	Description  string         `json:"description,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// ConnectionRequest живет только в канале координации и не сохраняется
type ConnectionRequest struct {
	RequestID       string          `json:"requestId"`
	IncidentID      string          `json:"incidentId"`
	DispatcherID    string          `json:"dispatcherId"`
	OpCenID         string          `json:"opCenId"`
	ConnectingTime  time.Time       `json:"connectingTime"`
	IncidentDetails IncidentDetails `json:"incidentDetails"`
}

// Источник записи журнала
const (
	HandoffSourceLocal       = "local"
	HandoffSourceCoordinator = "coordinator"
)

// HandoffEvent - запись журнала переходов передачи инцидента
type HandoffEvent struct {
	ID         int64       `json:"id"`
	IncidentID string      `json:"incident_id"`
	OpCenID    string      `json:"opcen_id"`
	RequestID  string      `json:"request_id,omitempty"`
	Status     OpCenStatus `json:"status"`
	Source     string      `json:"source"`
	RecordedAt time.Time   `json:"recorded_at"`
}

// RoleRegistration переотправляется при каждом подключении канала
type RoleRegistration struct {
	Role string `json:"role"`
	ID   string `json:"id"`
}

// HandoffMessage - первое сообщение в канале общения после успешной передачи инцидента
type HandoffMessage struct {
	IncidentID   string       `json:"incident_id"`
	ChannelID    string       `json:"channel_id,omitempty"`
	OpCenID      string       `json:"opcen_id"`
	DispatcherID string       `json:"dispatcher_id"`
	IncidentType IncidentType `json:"incident_type"`
	Description  string       `json:"description,omitempty"`
	Text         string       `json:"text"`
	Timestamp    time.Time    `json:"timestamp"`
}
