package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kure690/GuardianDeployment-sub000/internal/models"
	"github.com/kure690/GuardianDeployment-sub000/internal/service"
	"github.com/redis/go-redis/v9"
)

const incidentColumns = `
	id,
	incident_type,
	description,
	COALESCE(dispatcher_id, ''),
	COALESCE(opcen_id, ''),
	opcen_status,
	responder_status,
	is_verified,
	is_accepted,
	is_resolved,
	is_finished,
	accepted_at,
	created_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Upsert сохраняет поля координации инцидента, синхронизированные с основным бэкендом
func (r *IncidentRepository) Upsert(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			id, incident_type, description, dispatcher_id, opcen_id, opcen_status,
			responder_status, is_verified, is_accepted, is_resolved, is_finished, accepted_at
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			incident_type = EXCLUDED.incident_type,
			description = EXCLUDED.description,
			dispatcher_id = EXCLUDED.dispatcher_id,
			opcen_id = EXCLUDED.opcen_id,
			opcen_status = EXCLUDED.opcen_status,
			responder_status = EXCLUDED.responder_status,
			is_verified = EXCLUDED.is_verified,
			is_accepted = EXCLUDED.is_accepted,
			is_resolved = EXCLUDED.is_resolved,
			is_finished = EXCLUDED.is_finished,
			accepted_at = EXCLUDED.accepted_at,
			updated_at = NOW()
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ID,
		incident.IncidentType,
		incident.Description,
		incident.DispatcherID,
		incident.OpCenID,
		incident.OpCenStatus,
		incident.ResponderStatus,
		incident.IsVerified,
		incident.IsAccepted,
		incident.IsResolved,
		incident.IsFinished,
		incident.AcceptedAt,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по идентификатору
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// SetOpCenStatus обновляет состояние передачи; пустой opCenID оставляет прежний OpCen,
// idle снимает назначение
func (r *IncidentRepository) SetOpCenStatus(ctx context.Context, id, opCenID string, status models.OpCenStatus) error {
	query := `
		UPDATE incidents SET
			opcen_id = CASE WHEN $3 = 'idle' THEN NULL ELSE COALESCE(NULLIF($2, ''), opcen_id) END,
			opcen_status = $3,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, opCenID, status)
	if err != nil {
		return fmt.Errorf("failed to update opcen status: %w", err)
	}

	// RowsAffected() == 0 - инцидента с таким id нет
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", id, service.ErrIncidentNotFound)
	}
	return nil
}

// SaveHandoffEvent добавляет запись в журнал передачи
func (r *IncidentRepository) SaveHandoffEvent(ctx context.Context, event *models.HandoffEvent) error {
	query := `
		INSERT INTO handoff_events (incident_id, opcen_id, request_id, status, source, recorded_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		event.IncidentID,
		event.OpCenID,
		event.RequestID,
		event.Status,
		event.Source,
		event.RecordedAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to save handoff event: %w", err)
	}
	return nil
}

// ListHandoffEvents возвращает журнал передачи инцидента, старые записи первыми
func (r *IncidentRepository) ListHandoffEvents(ctx context.Context, incidentID string, limit int) ([]*models.HandoffEvent, error) {
	query := `
		SELECT id, incident_id, opcen_id, COALESCE(request_id, ''), status, source, recorded_at
		FROM handoff_events
		WHERE incident_id = $1
		ORDER BY recorded_at, id
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, incidentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list handoff events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.HandoffEvent, 0)
	for rows.Next() {
		ev := &models.HandoffEvent{}
		if err := rows.Scan(&ev.ID, &ev.IncidentID, &ev.OpCenID, &ev.RequestID, &ev.Status, &ev.Source, &ev.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan handoff event row: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error handoff events iteration: %w", err)
	}
	return events, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis; промах - (nil, nil)
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id string) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, cacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("incident:%s", id)
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.IncidentType,
		&incident.Description,
		&incident.DispatcherID,
		&incident.OpCenID,
		&incident.OpCenStatus,
		&incident.ResponderStatus,
		&incident.IsVerified,
		&incident.IsAccepted,
		&incident.IsResolved,
		&incident.IsFinished,
		&incident.AcceptedAt,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}
