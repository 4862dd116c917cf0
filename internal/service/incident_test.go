package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/kure690/GuardianDeployment-sub000/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService - инстанс сервиса с моком репозитория
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewIncidentService(repoMock, logger)
	return service.(*incidentService), repoMock
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	expected := &models.Incident{ID: "inc-1", OpCenID: "opcen-7"}

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, "inc-1").Return(expected, nil).Times(1)
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	incident, err := service.GetIncident(ctx, "inc-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	expected := &models.Incident{ID: "inc-1"}

	// 1. Промах кеша
	repoMock.EXPECT().GetIncidentFromCache(ctx, "inc-1").Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, "inc-1").Return(expected, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetIncidentCache(ctx, expected).Return(nil).Times(1)

	incident, err := service.GetIncident(ctx, "inc-1")

	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_CacheErrorFallsBackToDB(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	expected := &models.Incident{ID: "inc-1"}

	repoMock.EXPECT().GetIncidentFromCache(ctx, "inc-1").Return(nil, errors.New("redis down")).Times(1)
	repoMock.EXPECT().GetByID(ctx, "inc-1").Return(expected, nil).Times(1)
	repoMock.EXPECT().SetIncidentCache(ctx, expected).Return(errors.New("redis down")).Times(1)

	incident, err := service.GetIncident(ctx, "inc-1")

	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetIncidentFromCache(ctx, "missing").Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, "missing").Return(nil, fmt.Errorf("incident with id missing: %w", ErrIncidentNotFound)).Times(1)

	_, err := service.GetIncident(ctx, "missing")

	require.ErrorIs(t, err, ErrIncidentNotFound)
}

func TestUpsertIncident_Defaults(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{ID: "inc-1", Description: "smoke"}

	repoMock.EXPECT().Upsert(ctx, incident).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, "inc-1").Return(nil).Times(1)

	require.NoError(t, service.UpsertIncident(ctx, incident))
	assert.Equal(t, models.OpCenIdle, incident.OpCenStatus)
	assert.Equal(t, models.IncidentOther, incident.IncidentType)
}

func TestUpsertIncident_InvalidStatus(t *testing.T) {
	service, repoMock := newTestIncidentService(t)

	repoMock.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	err := service.UpsertIncident(context.Background(), &models.Incident{ID: "inc-1", OpCenStatus: "pending"})
	require.Error(t, err)
}

func TestSaveHandoffEvent_CoordinatorPersistsStatus(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	event := &models.HandoffEvent{
		IncidentID: "inc-1",
		OpCenID:    "opcen-7",
		Status:     models.OpCenConnected,
		Source:     models.HandoffSourceCoordinator,
		RecordedAt: time.Now(),
	}

	gomock.InOrder(
		repoMock.EXPECT().SaveHandoffEvent(ctx, event).Return(nil),
		repoMock.EXPECT().SetOpCenStatus(ctx, "inc-1", "opcen-7", models.OpCenConnected).Return(nil),
		repoMock.EXPECT().InvalidateIncidentCache(ctx, "inc-1").Return(nil),
	)

	require.NoError(t, service.SaveHandoffEvent(ctx, event))
}

func TestSaveHandoffEvent_LocalOnlyJournals(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	event := &models.HandoffEvent{IncidentID: "inc-1", Status: models.OpCenConnecting, Source: models.HandoffSourceLocal}

	repoMock.EXPECT().SaveHandoffEvent(ctx, event).Return(nil).Times(1)
	repoMock.EXPECT().SetOpCenStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, service.SaveHandoffEvent(ctx, event))
}

func TestSaveHandoffEvent_UnsyncedIncident(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	event := &models.HandoffEvent{IncidentID: "inc-1", Status: models.OpCenIdle, Source: models.HandoffSourceCoordinator}

	repoMock.EXPECT().SaveHandoffEvent(ctx, event).Return(nil).Times(1)
	repoMock.EXPECT().SetOpCenStatus(ctx, "inc-1", "", models.OpCenIdle).Return(ErrIncidentNotFound).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, service.SaveHandoffEvent(ctx, event))
}

func TestSaveHandoffEvent_CoordinatorIdleClearsOpCen(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	// Отказ OpCen: координатор присылает idle с id отказавшего OpCen
	event := &models.HandoffEvent{IncidentID: "inc-1", OpCenID: "opcen-7", Status: models.OpCenIdle, Source: models.HandoffSourceCoordinator}

	gomock.InOrder(
		repoMock.EXPECT().SaveHandoffEvent(ctx, event).Return(nil),
		repoMock.EXPECT().SetOpCenStatus(ctx, "inc-1", "", models.OpCenIdle).Return(nil),
		repoMock.EXPECT().InvalidateIncidentCache(ctx, "inc-1").Return(nil),
	)

	require.NoError(t, service.SaveHandoffEvent(ctx, event))
	assert.Equal(t, "opcen-7", event.OpCenID, "journal keeps the declining opcen")
}

func TestSaveHandoffEvent_RepositoryError(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	dbErr := errors.New("db error")
	event := &models.HandoffEvent{IncidentID: "inc-1", Status: models.OpCenIdle, Source: models.HandoffSourceLocal}

	repoMock.EXPECT().SaveHandoffEvent(ctx, event).Return(dbErr).Times(1)

	err := service.SaveHandoffEvent(ctx, event)
	require.ErrorIs(t, err, dbErr)
}

func TestListHandoffEvents_ClampsLimit(t *testing.T) {
	service, repoMock := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.HandoffEvent{{ID: 1, IncidentID: "inc-1"}}

	repoMock.EXPECT().ListHandoffEvents(ctx, "inc-1", 100).Return(expected, nil).Times(1)

	events, err := service.ListHandoffEvents(ctx, "inc-1", 0)
	require.NoError(t, err)
	assert.Equal(t, expected, events)
}
