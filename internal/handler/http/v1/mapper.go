package v1

import (
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/handoff"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
)

// DTOToIncidentModel преобразует DTO синхронизации в доменную модель
func DTOToIncidentModel(id string, dto UpsertIncidentRequest) *models.Incident {
	incident := &models.Incident{
		ID:           id,
		IncidentType: models.IncidentType(dto.IncidentType),
		Description:  dto.Description,
		DispatcherID: dto.DispatcherID,
		OpCenID:      dto.OpCenID,
		OpCenStatus:  models.OpCenStatus(dto.OpCenStatus),
		IsVerified:   dto.IsVerified,
		IsAccepted:   dto.IsAccepted,
		IsResolved:   dto.IsResolved,
		IsFinished:   dto.IsFinished,
		AcceptedAt:   dto.AcceptedAt,
	}
	if dto.ResponderStatus != "" {
		status := models.ResponderStatus(dto.ResponderStatus)
		incident.ResponderStatus = &status
	}
	return incident
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident, now time.Time) *IncidentResponse {
	resp := &IncidentResponse{
		ID:                   model.ID,
		IncidentType:         string(model.IncidentType),
		Description:          model.Description,
		DispatcherID:         model.DispatcherID,
		OpCenID:              model.OpCenID,
		OpCenStatus:          string(model.OpCenStatus),
		IsVerified:           model.IsVerified,
		IsAccepted:           model.IsAccepted,
		IsResolved:           model.IsResolved,
		IsFinished:           model.IsFinished,
		AcceptedAt:           model.AcceptedAt,
		SinceCreatedSeconds:  int64(model.SinceCreated(now).Seconds()),
		SinceAcceptedSeconds: int64(model.SinceAccepted(now).Seconds()),
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
	if model.ResponderStatus != nil {
		resp.ResponderStatus = string(*model.ResponderStatus)
	}
	return resp
}

func ConnectDTOToDetails(dto ConnectRequest) models.IncidentDetails {
	return models.IncidentDetails{
		IncidentType: models.IncidentType(dto.IncidentType),
		Description:  dto.Description,
		Extra:        dto.Extra,
	}
}

func RequestToConnectResponse(req models.ConnectionRequest) *ConnectResponse {
	return &ConnectResponse{
		RequestID:      req.RequestID,
		IncidentID:     req.IncidentID,
		OpCenID:        req.OpCenID,
		DispatcherID:   req.DispatcherID,
		ConnectingTime: req.ConnectingTime,
	}
}

func SnapshotToHandoffResponse(s handoff.Snapshot) *HandoffResponse {
	resp := &HandoffResponse{
		IncidentID:    s.IncidentID,
		Status:        string(s.Status),
		Connecting:    s.Connecting(),
		SelectedOpCen: s.SelectedOpCen,
		OpCenName:     s.OpCenName,
		RequestID:     s.RequestID,
		DispatcherID:  s.DispatcherID,
		HandedOffTo:   s.HandedOffTo,
		ChannelID:     s.ChannelID,
		UpdatedAt:     s.UpdatedAt,
	}
	if !s.ConnectingTime.IsZero() {
		t := s.ConnectingTime
		resp.ConnectingTime = &t
	}
	return resp
}

func EventsToHandoffEventResponses(events []*models.HandoffEvent) []*HandoffEventResponse {
	responses := make([]*HandoffEventResponse, len(events))
	for i, ev := range events {
		responses[i] = &HandoffEventResponse{
			ID:         ev.ID,
			OpCenID:    ev.OpCenID,
			RequestID:  ev.RequestID,
			Status:     string(ev.Status),
			Source:     ev.Source,
			RecordedAt: ev.RecordedAt,
		}
	}
	return responses
}

func MembersDTOToModels(dto []CallMemberDTO) []models.CallMember {
	members := make([]models.CallMember, len(dto))
	for i, m := range dto {
		members[i] = models.CallMember{UserID: m.UserID, Name: m.Name}
	}
	return members
}

func MembersToDTO(members []models.CallMember) []CallMemberDTO {
	out := make([]CallMemberDTO, len(members))
	for i, m := range members {
		out[i] = CallMemberDTO{UserID: m.UserID, Name: m.Name}
	}
	return out
}

// CallToResponse преобразует звонок в DTO; localID определяет created_by_me
func CallToResponse(call models.Call, localID string) *CallResponse {
	return &CallResponse{
		ID:                       call.ID,
		CreatedBy:                call.CreatedBy,
		CreatedByMe:              call.IsCreatedByMe(localID),
		Members:                  MembersToDTO(call.Members),
		State:                    string(call.State),
		JoinedByMe:               call.JoinedByMe,
		RingTimeoutSeconds:       int64(call.RingTimeout.Seconds()),
		AutoCancelTimeoutSeconds: int64(call.AutoCancelTimeout.Seconds()),
		CreatedAt:                call.CreatedAt,
	}
}

func SnapshotsToHandoffResponses(snaps []handoff.Snapshot) []*HandoffResponse {
	responses := make([]*HandoffResponse, len(snaps))
	for i, s := range snaps {
		responses[i] = SnapshotToHandoffResponse(s)
	}
	return responses
}

func CallsToResponses(calls []models.Call, localID string) []*CallResponse {
	responses := make([]*CallResponse, len(calls))
	for i, c := range calls {
		responses[i] = CallToResponse(c, localID)
	}
	return responses
}
