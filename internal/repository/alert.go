package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

var alertCopyColumns = []string{"alert_id", "incident_id", "tourist_id", "distance_km", "is_read", "created_at"}

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// CreateBatch записывает алерты одним COPY. Атомарность обеспечивает внешняя транзакция.
func (r *AlertRepository) CreateBatch(ctx context.Context, alerts []*models.Alert) (int64, error) {
	n, err := conn(ctx, r.db).CopyFrom(ctx,
		pgx.Identifier{"alerts"},
		alertCopyColumns,
		pgx.CopyFromSlice(len(alerts), func(i int) ([]any, error) {
			a := alerts[i]
			return []any{a.ID, a.IncidentID, a.TouristID, a.Distance, a.IsRead, a.CreatedAt}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy alerts: %w", err)
	}
	return n, nil
}

// List возвращает алерты вместе с инцидентами. Для алерта без инцидента Incident == nil.
func (r *AlertRepository) List(ctx context.Context, touristID *uuid.UUID) ([]*models.AlertRecord, error) {
	query := `
		SELECT
			a.alert_id,
			a.incident_id,
			a.tourist_id,
			a.distance_km,
			a.is_read,
			a.created_at,
			i.incident_id,
			i.title,
			i.category,
			i.status
		FROM alerts a
		LEFT JOIN incidents i ON i.incident_id = a.incident_id`
	var args []any
	if touristID != nil {
		query += `
		WHERE a.tourist_id = $1`
		args = append(args, *touristID)
	}
	query += `
		ORDER BY a.created_at DESC, a.alert_id;`

	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	records := make([]*models.AlertRecord, 0)
	for rows.Next() {
		var (
			rec        models.AlertRecord
			incidentID *uuid.UUID
			title      *string
			category   *string
			status     *string
		)
		err := rows.Scan(
			&rec.Alert.ID,
			&rec.Alert.IncidentID,
			&rec.Alert.TouristID,
			&rec.Alert.Distance,
			&rec.Alert.IsRead,
			&rec.Alert.CreatedAt,
			&incidentID,
			&title,
			&category,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		if incidentID != nil {
			rec.Incident = &models.Incident{
				ID:       *incidentID,
				Title:    deref(title),
				Category: deref(category),
				Status:   deref(status),
			}
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alert iteration: %w", err)
	}
	return records, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
