package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrIncidentNotFound - инцидент не синхронизирован в локальное хранилище
var ErrIncidentNotFound = errors.New("incident not found")

//go:generate mockgen -source=incident.go -destination=mocks/mocks.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Upsert(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	SetOpCenStatus(ctx context.Context, id, opCenID string, status models.OpCenStatus) error
	SaveHandoffEvent(ctx context.Context, event *models.HandoffEvent) error
	ListHandoffEvents(ctx context.Context, incidentID string, limit int) ([]*models.HandoffEvent, error)
	GetIncidentFromCache(ctx context.Context, id string) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id string) error
}

// IncidentService - поля координации инцидентов и журнал передачи
type IncidentService interface {
	UpsertIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	SaveHandoffEvent(ctx context.Context, event *models.HandoffEvent) error
	ListHandoffEvents(ctx context.Context, incidentID string, limit int) ([]*models.HandoffEvent, error)
}

type incidentService struct {
	repo   IncidentRepository
	logger *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:   repo,
		logger: logger,
	}
}

// UpsertIncident сохраняет запись, пришедшую из основного бэкенда
func (s *incidentService) UpsertIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpsertIncident",
		"incident_id": incident.ID,
	})

	if incident.OpCenStatus == "" {
		incident.OpCenStatus = models.OpCenIdle
	}
	if !incident.OpCenStatus.Valid() {
		return fmt.Errorf("service: invalid opcen status %q", incident.OpCenStatus)
	}
	if incident.IncidentType == "" {
		incident.IncidentType = models.IncidentOther
	}

	if err := s.repo.Upsert(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to upsert incident in repository")
		return fmt.Errorf("service: could not upsert incident: %w", err)
	}
	s.invalidate(ctx, log, incident.ID)

	log.Info("Incident upserted successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		// Кеш недоступен - идем в бд
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if incident != nil {
		log.Debug("Incident served from cache")
		return incident, nil
	}

	incident, err = s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrIncidentNotFound) {
			log.Debug("Incident not found")
		} else {
			log.WithError(err).Error("Failed to get incident in repository")
		}
		return nil, fmt.Errorf("service: not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// SaveHandoffEvent пишет переход в журнал. Переходы от координатора авторитетны
// и переносятся в запись инцидента.
func (s *incidentService) SaveHandoffEvent(ctx context.Context, event *models.HandoffEvent) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SaveHandoffEvent",
		"incident_id": event.IncidentID,
		"status":      event.Status,
	})

	if err := s.repo.SaveHandoffEvent(ctx, event); err != nil {
		log.WithError(err).Error("Failed to save handoff event")
		return fmt.Errorf("service: could not save handoff event: %w", err)
	}
	if event.Source != models.HandoffSourceCoordinator {
		return nil
	}

	// idle после отказа или закрытия снимает назначенный OpCen
	opCenID := event.OpCenID
	if event.Status == models.OpCenIdle {
		opCenID = ""
	}
	if err := s.repo.SetOpCenStatus(ctx, event.IncidentID, opCenID, event.Status); err != nil {
		if errors.Is(err, ErrIncidentNotFound) {
			log.Debug("Incident is not synced locally, status not persisted")
			return nil
		}
		log.WithError(err).Error("Failed to persist opcen status")
		return fmt.Errorf("service: could not persist opcen status: %w", err)
	}
	s.invalidate(ctx, log, event.IncidentID)
	return nil
}

// ListHandoffEvents возвращает журнал передачи
func (s *incidentService) ListHandoffEvents(ctx context.Context, incidentID string, limit int) ([]*models.HandoffEvent, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	events, err := s.repo.ListHandoffEvents(ctx, incidentID, limit)
	if err != nil {
		s.logger.WithError(err).WithField("incident_id", incidentID).Error("Failed to list handoff events")
		return nil, fmt.Errorf("service: could not list handoff events: %w", err)
	}
	return events, nil
}

func (s *incidentService) invalidate(ctx context.Context, log *logrus.Entry, id string) {
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}
