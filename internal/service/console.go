package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kure690/GuardianDeployment-sub000/internal/call"
	"github.com/kure690/GuardianDeployment-sub000/internal/channel"
	"github.com/kure690/GuardianDeployment-sub000/internal/config"
	"github.com/kure690/GuardianDeployment-sub000/internal/emitqueue"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/kure690/GuardianDeployment-sub000/internal/handoff"
	"github.com/kure690/GuardianDeployment-sub000/internal/metrics"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/kure690/GuardianDeployment-sub000/internal/presence"
	"github.com/kure690/GuardianDeployment-sub000/internal/registration"
	"github.com/sirupsen/logrus"
)

// ErrWrongRole - операция недоступна для роли консоли
var ErrWrongRole = errors.New("operation not available for this console role")

//go:generate mockgen -source=console.go -destination=mocks/console.go -package=mocks

// ConsoleService - ядро координации консоли: канал, очередь, передача инцидентов,
// звонки и счетчики присутствия
type ConsoleService interface {
	Run(ctx context.Context) error
	Close()
	Connected() bool
	Role() string
	QueueLen() int

	RequestConnect(ctx context.Context, incidentID, opCenID string, details models.IncidentDetails) (models.ConnectionRequest, error)
	Rejoin(ctx context.Context, incidentID string) (bool, error)
	Handoff(incidentID string) (handoff.Snapshot, bool)
	Handoffs() []handoff.Snapshot
	WatchHandoff(incidentID string) handoff.Snapshot
	UnwatchHandoff(incidentID string)
	CloseHandoff(ctx context.Context, incidentID string) error
	AcceptIncident(incidentID, channelID string) error
	DeclineIncident(incidentID string) error
	SetAvailability(available bool) error
	AssignResponder(incidentID, responderID string) error

	RingCall(ctx context.Context, members []models.CallMember) (models.Call, error)
	AcceptCall(ctx context.Context, callID string) error
	DeclineCall(ctx context.Context, callID string) (models.LeaveReason, error)
	Calls() []models.Call
	Participants(callID string, max int, includeSelf bool) ([]models.CallMember, error)

	Presence() models.PresenceSnapshot
}

// ConsoleDeps - необязательные внешние коллабораторы
type ConsoleDeps struct {
	Incidents IncidentService
	Directory handoff.Directory
	Poster    handoff.Poster
	Metrics   *metrics.Metrics
}

type consoleService struct {
	cfg      *config.Config
	logger   *logrus.Logger
	conn     *channel.Connection
	queue    *emitqueue.Queue
	tracker  *handoff.Tracker
	calls    *call.Adapter
	presence *presence.Aggregator
}

// NewConsoleService собирает компоненты на одном канале. Порядок хуков подключения:
// регистрация роли, сброс буфера, запрос счетчиков.
func NewConsoleService(cfg *config.Config, transport channel.Transport, deps ConsoleDeps, logger *logrus.Logger) (ConsoleService, error) {
	conn := channel.New(transport, logger, channel.Options{
		BaseDelay: cfg.ReconnectBaseDelay,
		MaxDelay:  cfg.ReconnectMaxDelay,
		Metrics:   deps.Metrics,
	})

	registrar, err := registration.New(conn, models.RoleRegistration{Role: cfg.Role, ID: cfg.ConsoleID}, logger)
	if err != nil {
		return nil, fmt.Errorf("service: could not create registrar: %w", err)
	}
	queue := emitqueue.New(conn, logger, emitqueue.Options{
		MaxBuffered: cfg.EmitQueueMax,
		TTL:         cfg.EmitQueueTTL,
		Metrics:     deps.Metrics,
	})

	opts := handoff.Options{
		Role:      cfg.Role,
		LocalID:   cfg.ConsoleID,
		Emitter:   queue,
		Directory: deps.Directory,
		Metrics:   deps.Metrics,
	}
	if deps.Incidents != nil {
		opts.Lookup = deps.Incidents
		opts.Journal = deps.Incidents
	}
	if cfg.Role == config.RoleDispatcher {
		opts.Poster = deps.Poster
	}
	tracker := handoff.NewTracker(logger, opts)

	calls := call.New(queue, logger, call.Options{
		LocalID:           cfg.ConsoleID,
		LocalName:         cfg.ConsoleName,
		RingTimeout:       cfg.CallRingTimeout,
		MaxDisplayMembers: cfg.CallMaxDisplayMembers,
		Metrics:           deps.Metrics,
	})
	agg := presence.New(conn, logger)

	registrar.Attach(conn)
	queue.Attach(conn)
	agg.Attach(conn)
	tracker.Attach(conn)
	calls.Attach(conn)

	return &consoleService{
		cfg:      cfg,
		logger:   logger,
		conn:     conn,
		queue:    queue,
		tracker:  tracker,
		calls:    calls,
		presence: agg,
	}, nil
}

// Run держит канал открытым до отмены ctx
func (s *consoleService) Run(ctx context.Context) error {
	s.logger.WithFields(logrus.Fields{
		"service": "console",
		"role":    s.cfg.Role,
		"id":      s.cfg.ConsoleID,
	}).Info("Starting coordination channel")
	return s.conn.Run(ctx)
}

// Close разрывает канал и дожидается фоновых операций передачи
func (s *consoleService) Close() {
	s.conn.Close()
	s.tracker.Wait()
}

func (s *consoleService) Connected() bool {
	return s.conn.Connected()
}

func (s *consoleService) Role() string {
	return s.cfg.Role
}

func (s *consoleService) QueueLen() int {
	return s.queue.Len()
}

func (s *consoleService) RequestConnect(ctx context.Context, incidentID, opCenID string, details models.IncidentDetails) (models.ConnectionRequest, error) {
	req, err := s.tracker.RequestConnect(ctx, incidentID, opCenID, details)
	if err != nil {
		return models.ConnectionRequest{}, fmt.Errorf("service: could not request opcen connect: %w", err)
	}
	return req, nil
}

func (s *consoleService) Rejoin(ctx context.Context, incidentID string) (bool, error) {
	rejoined, err := s.tracker.Rejoin(ctx, incidentID)
	if err != nil {
		return false, fmt.Errorf("service: could not rejoin incident: %w", err)
	}
	return rejoined, nil
}

func (s *consoleService) Handoff(incidentID string) (handoff.Snapshot, bool) {
	return s.tracker.Snapshot(incidentID)
}

// Handoffs возвращает все отслеживаемые передачи
func (s *consoleService) Handoffs() []handoff.Snapshot {
	return s.tracker.Snapshots()
}

// WatchHandoff удерживает состояние передачи, пока инцидент открыт в UI
func (s *consoleService) WatchHandoff(incidentID string) handoff.Snapshot {
	return s.tracker.Watch(incidentID)
}

func (s *consoleService) UnwatchHandoff(incidentID string) {
	s.tracker.Unwatch(incidentID)
}

func (s *consoleService) CloseHandoff(ctx context.Context, incidentID string) error {
	if err := s.tracker.Close(ctx, incidentID); err != nil {
		return fmt.Errorf("service: could not close handoff: %w", err)
	}
	return nil
}

func (s *consoleService) AcceptIncident(incidentID, channelID string) error {
	if err := s.tracker.AcceptIncident(incidentID, channelID); err != nil {
		return fmt.Errorf("service: could not accept incident: %w", err)
	}
	return nil
}

func (s *consoleService) DeclineIncident(incidentID string) error {
	if err := s.tracker.DeclineIncident(incidentID); err != nil {
		return fmt.Errorf("service: could not decline incident: %w", err)
	}
	return nil
}

// SetAvailability переключает доступность OpCen для новых передач
func (s *consoleService) SetAvailability(available bool) error {
	if s.cfg.Role != config.RoleOpCen {
		return ErrWrongRole
	}
	status := "unavailable"
	if available {
		status = "available"
	}
	s.queue.Enqueue(events.UpdateOpCenAvailability, events.Availability{Status: status})
	return nil
}

// AssignResponder отправляет бригаду на инцидент
func (s *consoleService) AssignResponder(incidentID, responderID string) error {
	if s.cfg.Role != config.RoleDispatcher {
		return ErrWrongRole
	}
	s.queue.Enqueue(events.RequestResponderAssignment, events.ResponderAssignment{
		IncidentID:  incidentID,
		ResponderID: responderID,
	})
	return nil
}

func (s *consoleService) RingCall(ctx context.Context, members []models.CallMember) (models.Call, error) {
	c, err := s.calls.Ring(ctx, members)
	if err != nil {
		return models.Call{}, fmt.Errorf("service: could not ring call: %w", err)
	}
	return c, nil
}

func (s *consoleService) AcceptCall(ctx context.Context, callID string) error {
	if err := s.calls.Accept(ctx, callID); err != nil {
		return fmt.Errorf("service: could not accept call: %w", err)
	}
	return nil
}

func (s *consoleService) DeclineCall(ctx context.Context, callID string) (models.LeaveReason, error) {
	reason, err := s.calls.Decline(ctx, callID)
	if err != nil {
		return "", fmt.Errorf("service: could not decline call: %w", err)
	}
	return reason, nil
}

func (s *consoleService) Calls() []models.Call {
	return s.calls.Calls()
}

func (s *consoleService) Participants(callID string, max int, includeSelf bool) ([]models.CallMember, error) {
	members, err := s.calls.Participants(callID, max, includeSelf)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve participants: %w", err)
	}
	return members, nil
}

func (s *consoleService) Presence() models.PresenceSnapshot {
	return s.presence.Snapshot()
}
