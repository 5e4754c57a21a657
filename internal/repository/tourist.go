package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

// TouristRepository читает профили туристов, которыми владеет модуль регистрации
type TouristRepository struct {
	db *pgxpool.Pool
}

func NewTouristRepository(db *pgxpool.Pool) service.TouristRepository {
	return &TouristRepository{db: db}
}

// Exists проверяет наличие профиля. Внутри транзакции строка блокируется FOR SHARE,
// чтобы профиль не удалили до вставки инцидента.
func (r *TouristRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT 1
		FROM tourist_profiles
		WHERE tourist_id = $1
		FOR SHARE;
	`
	var one int
	err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check tourist existence: %w", err)
	}
	return true, nil
}

// GetSummary возвращает имя и экстренный контакт туриста или nil, если профиля нет
func (r *TouristRepository) GetSummary(ctx context.Context, id uuid.UUID) (*models.TouristSummary, error) {
	query := `
		SELECT tourist_id, full_name, emergency_contact_name, emergency_contact_phone
		FROM tourist_profiles
		WHERE tourist_id = $1;
	`
	summary := &models.TouristSummary{}
	err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&summary.TouristID,
		&summary.FullName,
		&summary.EmergencyContactName,
		&summary.EmergencyContactPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tourist summary: %w", err)
	}
	return summary, nil
}

// ListIDs возвращает идентификаторы всех туристов
func (r *TouristRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `
		SELECT tourist_id
		FROM tourist_profiles
		ORDER BY created_at, tourist_id;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tourist ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to scan tourist ids: %w", err)
	}
	return ids, nil
}

// UpdateSafetyScore сохраняет уже ограниченный рейтинг и возвращает записанное значение
func (r *TouristRepository) UpdateSafetyScore(ctx context.Context, id uuid.UUID, score int) (int, error) {
	query := `
		UPDATE tourist_profiles
		SET safety_score = $1
		WHERE tourist_id = $2
		RETURNING safety_score;
	`
	var stored int
	err := conn(ctx, r.db).QueryRow(ctx, query, score, id).Scan(&stored)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("tourist %s: %w", id, service.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to update safety score: %w", err)
	}
	return stored, nil
}

// Count возвращает общее количество туристов
func (r *TouristRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM tourist_profiles;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tourists: %w", err)
	}
	return count, nil
}
