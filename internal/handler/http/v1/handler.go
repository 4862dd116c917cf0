package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kure690/GuardianDeployment-sub000/internal/call"
	"github.com/kure690/GuardianDeployment-sub000/internal/config"
	"github.com/kure690/GuardianDeployment-sub000/internal/handoff"
	"github.com/kure690/GuardianDeployment-sub000/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	console   service.ConsoleService
	incidents service.IncidentService
	logger    *logrus.Logger
	validate  *validator.Validate
	cfg       *config.Config
	now       func() time.Time
}

func NewHandler(console service.ConsoleService, incidents service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		console:   console,
		incidents: incidents,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
		now:       time.Now,
	}
}

// bind разбирает и проверяет тело запроса; при ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// writeError сопоставляет ошибки ядра с HTTP-статусами
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, handoff.ErrIllegalTransition), errors.Is(err, call.ErrIllegalTransition):
		log.WithError(err).Warn("Rejected by state machine")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, handoff.ErrUnknownIncident), errors.Is(err, call.ErrUnknownCall), errors.Is(err, service.ErrIncidentNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, handoff.ErrWrongRole), errors.Is(err, service.ErrWrongRole):
		c.JSON(http.StatusForbidden, gin.H{"error": "operation not available for this console role"})
	case errors.Is(err, call.ErrNoMembers):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Sync incident coordination record
// @Description Upsert the coordination fields of an incident owned by the main backend. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpsertIncidentRequest true "Incident coordination fields"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) upsertIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "upsertIncident").WithField("id", id)

	var input UpsertIncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(id, input)
	if err := h.incidents.UpsertIncident(c.Request.Context(), model); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(model, h.now()))
}

// @Summary Get incident by ID
// @Description Get an incident with elapsed times and the current hand-off state. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidents.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	resp := ModelToIncidentResponse(incident, h.now())
	if snap, ok := h.console.Handoff(id); ok {
		resp.Handoff = SnapshotToHandoffResponse(snap)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get hand-off journal
// @Description List recorded hand-off transitions of an incident. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param limit query int false "Maximum number of records" default(100)
// @Success 200 {array} HandoffEventResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/events [get]
func (h *Handler) listHandoffEvents(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "listHandoffEvents").WithField("id", id)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	events, err := h.incidents.ListHandoffEvents(c.Request.Context(), id, limit)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, EventsToHandoffEventResponses(events))
}

// @Summary Request OpCen connection
// @Description Hand an incident off to an OpCen. The request is queued while the coordinator is unreachable. Dispatcher role only.
// @Tags Handoff
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body ConnectRequest true "Connect request"
// @Success 202 {object} ConnectResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Wrong console role"
// @Router /incidents/{id}/connect [post]
func (h *Handler) requestConnect(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "requestConnect").WithField("id", id)

	var input ConnectRequest
	if !h.bind(c, log, &input) {
		return
	}

	req, err := h.console.RequestConnect(c.Request.Context(), id, input.OpCenID, ConnectDTOToDetails(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, RequestToConnectResponse(req))
}

// @Summary Rejoin incident hand-off
// @Description Re-attach this console to the OpCen that accepted the incident. Dispatcher role only.
// @Tags Handoff
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} RejoinResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/rejoin [post]
func (h *Handler) rejoin(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "rejoin").WithField("id", id)

	rejoined, err := h.console.Rejoin(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RejoinResponse{Rejoined: rejoined})
}

// @Summary Get hand-off state
// @Tags Handoff
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} HandoffResponse
// @Failure 404 {object} map[string]string "Incident is not tracked"
// @Router /incidents/{id}/handoff [get]
func (h *Handler) getHandoff(c *gin.Context) {
	snap, ok := h.console.Handoff(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "incident is not tracked"})
		return
	}
	c.JSON(http.StatusOK, SnapshotToHandoffResponse(snap))
}

// @Summary Watch hand-off
// @Description Keep the incident hand-off state after the hand-off settles.
// @Tags Handoff
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} HandoffResponse
// @Router /incidents/{id}/watch [post]
func (h *Handler) watchHandoff(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotToHandoffResponse(h.console.WatchHandoff(c.Param("id"))))
}

// @Summary Stop watching hand-off
// @Tags Handoff
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Router /incidents/{id}/watch [delete]
func (h *Handler) unwatchHandoff(c *gin.Context) {
	h.console.UnwatchHandoff(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// @Summary List tracked hand-offs
// @Tags Handoff
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} HandoffResponse
// @Router /handoffs [get]
func (h *Handler) listHandoffs(c *gin.Context) {
	c.JSON(http.StatusOK, SnapshotsToHandoffResponses(h.console.Handoffs()))
}

// @Summary Close hand-off
// @Description Reset the incident hand-off to idle.
// @Tags Handoff
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Incident is not tracked"
// @Failure 409 {object} map[string]string "Illegal transition"
// @Router /incidents/{id}/handoff [delete]
func (h *Handler) closeHandoff(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "closeHandoff").WithField("id", id)

	if err := h.console.CloseHandoff(c.Request.Context(), id); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Accept incoming hand-off
// @Description OpCen role only.
// @Tags Handoff
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body ResolveIncidentRequest false "Established channel"
// @Success 202 "Accepted"
// @Failure 409 {object} map[string]string "Incident is not connecting"
// @Router /incidents/{id}/accept [post]
func (h *Handler) acceptIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "acceptIncident").WithField("id", id)

	var input ResolveIncidentRequest
	if c.Request.ContentLength > 0 && !h.bind(c, log, &input) {
		return
	}
	if err := h.console.AcceptIncident(id, input.ChannelID); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Decline incoming hand-off
// @Description OpCen role only.
// @Tags Handoff
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 202 "Accepted"
// @Failure 409 {object} map[string]string "Incident is not connecting"
// @Router /incidents/{id}/decline [post]
func (h *Handler) declineIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "declineIncident").WithField("id", id)

	if err := h.console.DeclineIncident(id); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Assign responder
// @Description Dispatch a field unit to the incident. Dispatcher role only.
// @Tags Incidents
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body AssignResponderRequest true "Responder"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Validation error"
// @Router /incidents/{id}/responders [post]
func (h *Handler) assignResponder(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "assignResponder").WithField("id", id)

	var input AssignResponderRequest
	if !h.bind(c, log, &input) {
		return
	}
	if err := h.console.AssignResponder(id, input.ResponderID); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Toggle OpCen availability
// @Description OpCen role only.
// @Tags OpCen
// @Accept json
// @Security ApiKeyAuth
// @Param request body AvailabilityRequest true "Availability"
// @Success 202 "Accepted"
// @Failure 403 {object} map[string]string "Wrong console role"
// @Router /opcen/availability [put]
func (h *Handler) setAvailability(c *gin.Context) {
	log := h.logger.WithField("method", "setAvailability")

	var input AvailabilityRequest
	if !h.bind(c, log, &input) {
		return
	}
	if err := h.console.SetAvailability(*input.Available); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Ring a call
// @Tags Calls
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RingCallRequest true "Call members"
// @Success 201 {object} CallResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /calls [post]
func (h *Handler) ringCall(c *gin.Context) {
	log := h.logger.WithField("method", "ringCall")

	var input RingCallRequest
	if !h.bind(c, log, &input) {
		return
	}
	created, err := h.console.RingCall(c.Request.Context(), MembersDTOToModels(input.Members))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CallToResponse(created, h.cfg.ConsoleID))
}

// @Summary List active calls
// @Tags Calls
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} CallResponse
// @Router /calls [get]
func (h *Handler) listCalls(c *gin.Context) {
	c.JSON(http.StatusOK, CallsToResponses(h.console.Calls(), h.cfg.ConsoleID))
}

// @Summary Accept a ringing call
// @Tags Calls
// @Security ApiKeyAuth
// @Param id path string true "Call ID"
// @Success 202 "Accepted"
// @Failure 404 {object} map[string]string "Unknown call"
// @Failure 409 {object} map[string]string "Call is not ringing"
// @Router /calls/{id}/accept [post]
func (h *Handler) acceptCall(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "acceptCall").WithField("id", id)

	if err := h.console.AcceptCall(c.Request.Context(), id); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Decline or cancel a call
// @Description Leaves with reason cancel when this console created the call, decline otherwise.
// @Tags Calls
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Call ID"
// @Success 200 {object} DeclineCallResponse
// @Failure 404 {object} map[string]string "Unknown call"
// @Failure 409 {object} map[string]string "Call cannot be declined"
// @Router /calls/{id}/decline [post]
func (h *Handler) declineCall(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "declineCall").WithField("id", id)

	reason, err := h.console.DeclineCall(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DeclineCallResponse{Reason: string(reason)})
}

// @Summary Resolve call participants
// @Description Who is calling for an incoming call, the other members for an own call.
// @Tags Calls
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Call ID"
// @Param max query int false "Maximum number of members"
// @Param includeSelf query bool false "Include this console"
// @Success 200 {array} CallMemberDTO
// @Failure 404 {object} map[string]string "Unknown call"
// @Router /calls/{id}/participants [get]
func (h *Handler) participants(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "participants").WithField("id", id)
	max, _ := strconv.Atoi(c.DefaultQuery("max", "0"))
	includeSelf, _ := strconv.ParseBool(c.DefaultQuery("includeSelf", "false"))

	members, err := h.console.Participants(id, max, includeSelf)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MembersToDTO(members))
}

// @Summary Get presence counts
// @Tags Presence
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.PresenceSnapshot
// @Router /presence [get]
func (h *Handler) getPresence(c *gin.Context) {
	c.JSON(http.StatusOK, h.console.Presence())
}

// @Summary Get console health status
// @Description 503 while the coordination channel is down.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:     "ok",
		Connected:  h.console.Connected(),
		Role:       h.console.Role(),
		QueueDepth: h.console.QueueLen(),
	}
	if !resp.Connected {
		resp.Status = "reconnecting"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
