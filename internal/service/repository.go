package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) (*models.Incident, error)
	UpdatePriority(ctx context.Context, id uuid.UUID, priority string, updatedAt time.Time) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	// SetIncidentCache кладет инцидент в кеш, только если ключа еще нет
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	// RefreshIncidentCache перезаписывает кеш значением после изменения
	RefreshIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// TouristRepository - контракт хранилища профилей туристов, которое ядро только читает,
// за исключением рейтинга безопасности
type TouristRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// GetSummary возвращает nil без ошибки, если туриста нет
	GetSummary(ctx context.Context, id uuid.UUID) (*models.TouristSummary, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateSafetyScore(ctx context.Context, id uuid.UUID, score int) (int, error)
	Count(ctx context.Context) (int, error)
}

// AlertRepository определяет контракт для работы с бд алертов
type AlertRepository interface {
	CreateBatch(ctx context.Context, alerts []*models.Alert) (int64, error)
	// List возвращает алерты туриста или все алерты при touristID == nil, новые первыми
	List(ctx context.Context, touristID *uuid.UUID) ([]*models.AlertRecord, error)
}
