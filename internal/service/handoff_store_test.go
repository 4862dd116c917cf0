package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/config"
	"github.com/kure690/GuardianDeployment-sub000/internal/events"
	"github.com/kure690/GuardianDeployment-sub000/internal/handoff"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryIncidentRepo повторяет семантику запросов IncidentRepository в памяти
type memoryIncidentRepo struct {
	mu        sync.Mutex
	incidents map[string]models.Incident
	events    []*models.HandoffEvent
	// slowStatus задерживает запись указанного статуса
	slowStatus models.OpCenStatus
}

func newMemoryIncidentRepo() *memoryIncidentRepo {
	return &memoryIncidentRepo{incidents: make(map[string]models.Incident)}
}

func (r *memoryIncidentRepo) Upsert(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incidents[incident.ID] = *incident
	return nil
}

func (r *memoryIncidentRepo) GetByID(_ context.Context, id string) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s: %w", id, ErrIncidentNotFound)
	}
	return &incident, nil
}

func (r *memoryIncidentRepo) SetOpCenStatus(ctx context.Context, id, opCenID string, status models.OpCenStatus) error {
	if status == r.slowStatus {
		time.Sleep(20 * time.Millisecond)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok {
		return fmt.Errorf("incident with id %s: %w", id, ErrIncidentNotFound)
	}
	switch {
	case status == models.OpCenIdle:
		incident.OpCenID = ""
	case opCenID != "":
		incident.OpCenID = opCenID
	}
	incident.OpCenStatus = status
	r.incidents[id] = incident
	return nil
}

func (r *memoryIncidentRepo) SaveHandoffEvent(ctx context.Context, event *models.HandoffEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *memoryIncidentRepo) ListHandoffEvents(_ context.Context, incidentID string, limit int) ([]*models.HandoffEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.HandoffEvent
	for _, ev := range r.events {
		if ev.IncidentID == incidentID && len(out) < limit {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *memoryIncidentRepo) GetIncidentFromCache(context.Context, string) (*models.Incident, error) {
	return nil, nil
}

func (r *memoryIncidentRepo) SetIncidentCache(context.Context, *models.Incident) error {
	return nil
}

func (r *memoryIncidentRepo) InvalidateIncidentCache(context.Context, string) error {
	return nil
}

type namesEmitter struct {
	mu    sync.Mutex
	names []string
}

func (e *namesEmitter) Enqueue(event string, _ ...any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.names = append(e.names, event)
}

func (e *namesEmitter) sent() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.names...)
}

// newStoreTracker собирает трекер диспетчера поверх сервиса инцидентов с хранилищем в памяти
func newStoreTracker(t *testing.T, repo *memoryIncidentRepo) (*handoff.Tracker, IncidentService, *namesEmitter) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	incidents := NewIncidentService(repo, logger)
	require.NoError(t, incidents.UpsertIncident(context.Background(), &models.Incident{ID: "INC-1"}))

	emitter := &namesEmitter{}
	tracker := handoff.NewTracker(logger, handoff.Options{
		Role:    config.RoleDispatcher,
		LocalID: "dispatcher-1",
		Emitter: emitter,
		Lookup:  incidents,
		Journal: incidents,
	})
	return tracker, incidents, emitter
}

func TestHandoffStore_DeclineClearsOpCenAndSkipsRejoin(t *testing.T) {
	repo := newMemoryIncidentRepo()
	repo.slowStatus = models.OpCenConnecting
	tracker, incidents, emitter := newStoreTracker(t, repo)
	ctx := context.Background()

	// Запрос пришел по HTTP: контекст отменяется сразу после ответа
	reqCtx, cancel := context.WithCancel(ctx)
	req, err := tracker.RequestConnect(reqCtx, "INC-1", "OC-1", models.IncidentDetails{})
	require.NoError(t, err)
	cancel()

	tracker.HandleStatus(ctx, events.OpCenStatus{IncidentID: "INC-1", Status: models.OpCenConnecting, RequestID: req.RequestID, OpCenID: "OC-1"})
	tracker.HandleStatus(ctx, events.OpCenStatus{IncidentID: "INC-1", Status: models.OpCenIdle, RequestID: req.RequestID, OpCenID: "OC-1"})
	tracker.Wait()

	stored, err := incidents.GetIncident(ctx, "INC-1")
	require.NoError(t, err)
	assert.Equal(t, models.OpCenIdle, stored.OpCenStatus)
	assert.Empty(t, stored.OpCenID)

	journal, err := incidents.ListHandoffEvents(ctx, "INC-1", 10)
	require.NoError(t, err)
	require.Len(t, journal, 3)
	assert.Equal(t, models.OpCenConnecting, journal[0].Status)
	assert.Equal(t, models.HandoffSourceLocal, journal[0].Source)
	assert.Equal(t, models.OpCenIdle, journal[2].Status)

	rejoined, err := tracker.Rejoin(ctx, "INC-1")
	require.NoError(t, err)
	assert.False(t, rejoined)
	assert.NotContains(t, emitter.sent(), events.DispatcherRejoin)
}

func TestHandoffStore_AcceptedOpCenRejoinsNextSession(t *testing.T) {
	repo := newMemoryIncidentRepo()
	tracker, incidents, _ := newStoreTracker(t, repo)
	ctx := context.Background()

	req, err := tracker.RequestConnect(ctx, "INC-1", "OC-1", models.IncidentDetails{})
	require.NoError(t, err)
	tracker.HandleStatus(ctx, events.OpCenStatus{IncidentID: "INC-1", Status: models.OpCenConnecting, RequestID: req.RequestID, OpCenID: "OC-1"})
	tracker.HandleStatus(ctx, events.OpCenStatus{IncidentID: "INC-1", Status: models.OpCenConnected, RequestID: req.RequestID, OpCenID: "OC-1", ChannelID: "chan-1"})
	tracker.Wait()

	stored, err := incidents.GetIncident(ctx, "INC-1")
	require.NoError(t, err)
	assert.Equal(t, models.OpCenConnected, stored.OpCenStatus)
	assert.Equal(t, "OC-1", stored.OpCenID)

	// Новая сессия консоли
	next, _, emitter := newStoreTracker(t, repo)
	repo.mu.Lock()
	repo.incidents["INC-1"] = *stored
	repo.mu.Unlock()

	rejoined, err := next.Rejoin(ctx, "INC-1")
	require.NoError(t, err)
	assert.True(t, rejoined)
	assert.Equal(t, []string{events.DispatcherRejoin}, emitter.sent())
}
