package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

const incidentColumns = `
			incident_id,
			tourist_id,
			title,
			description,
			category,
			latitude,
			longitude,
			status,
			priority,
			created_at,
			updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const insertIncidentQuery = `
		INSERT INTO incidents (tourist_id, title, description, category, latitude, longitude, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING incident_id, created_at, updated_at;
	`

// Create создает новую запись об инциденте в бд.
// created_at и updated_at задает сервис по своим часам, те же часы используются при обновлениях.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	err := conn(ctx, r.db).QueryRow(ctx, insertIncidentQuery,
		incident.TouristID,
		incident.Title,
		incident.Description,
		incident.Category,
		incident.Latitude,
		incident.Longitude,
		incident.Status,
		incident.Priority,
		incident.CreatedAt,
		incident.UpdatedAt,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE incident_id = $1;
	`
	incident, err := scanIncident(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// UpdateStatus устанавливает статус и время изменения
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) (*models.Incident, error) {
	return r.updateField(ctx, "status", id, status, updatedAt)
}

// UpdatePriority устанавливает приоритет и время изменения
func (r *IncidentRepository) UpdatePriority(ctx context.Context, id uuid.UUID, priority string, updatedAt time.Time) (*models.Incident, error) {
	return r.updateField(ctx, "priority", id, priority, updatedAt)
}

// updateField обновляет одну колонку; column задается только кодом пакета.
func (r *IncidentRepository) updateField(ctx context.Context, column string, id uuid.UUID, value string, updatedAt time.Time) (*models.Incident, error) {
	incident, err := scanIncident(conn(ctx, r.db).QueryRow(ctx, updateFieldQuery(column), value, updatedAt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found for update: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update incident %s: %w", column, err)
	}
	return incident, nil
}

// List возвращает инциденты по фильтру, новые первыми
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	query, args := buildListQuery(filter)
	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// updateFieldQuery строит UPDATE одной колонки. Каждое изменение сдвигает updated_at
// строго вперед, даже если часы приложения отстали от прошлого значения.
func updateFieldQuery(column string) string {
	return `
		UPDATE incidents SET
			` + column + ` = $1,
			updated_at = GREATEST($2::timestamptz, updated_at + INTERVAL '1 microsecond')
		WHERE incident_id = $3
		RETURNING` + incidentColumns + `;
	`
}

func buildListQuery(filter models.IncidentFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.TouristID != nil {
		args = append(args, *filter.TouristID)
		conds = append(conds, fmt.Sprintf("tourist_id = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT")
	b.WriteString(incidentColumns)
	b.WriteString("\n\t\tFROM incidents")
	if len(conds) > 0 {
		b.WriteString("\n\t\tWHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString("\n\t\tORDER BY created_at DESC, incident_id;")
	return b.String(), args
}

// CountByStatus возвращает количество инцидентов в каждом статусе
func (r *IncidentRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM incidents
		GROUP BY status;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan incident count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error count iteration: %w", err)
	}
	return counts, nil
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.TouristID,
		&incident.Title,
		&incident.Description,
		&incident.Category,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Status,
		&incident.Priority,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache пытается получить инцидент из Redis; промах - (nil, nil)
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
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

// SetIncidentCache кладет прочитанный из бд инцидент в Redis, только если ключа еще нет.
// Запоздавший читатель не перетирает значение, записанное после изменения.
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.SetNX(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// RefreshIncidentCache записывает в Redis инцидент после изменения.
// Значение с более поздним updated_at не заменяется, поэтому порядок конкурентных
// изменений в кеше совпадает с порядком в бд.
func (r *IncidentRepository) RefreshIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	key := incidentCacheKey(incident.ID)

	err = r.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil && !isNewerIncident(incident, current) {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, val, r.cacheTTL)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("failed to refresh incident in cache: %w", err)
	}
	return nil
}

// isNewerIncident сообщает, что incident не старше закешированного значения.
// Нечитаемое значение в кеше считается устаревшим.
func isNewerIncident(incident *models.Incident, cached []byte) bool {
	var prev models.Incident
	if err := json.Unmarshal(cached, &prev); err != nil {
		return true
	}
	return !incident.UpdatedAt.Before(prev.UpdatedAt)
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
