package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=safety.go -destination=mocks/mock_safety.go -package=mocks

// SafetyScoreService определяет контракт ручной корректировки рейтинга безопасности
type SafetyScoreService interface {
	UpdateSafetyScore(ctx context.Context, touristID uuid.UUID, score int) (int, error)
}

type safetyScoreService struct {
	tourists TouristRepository
	logger   *logrus.Logger
}

func NewSafetyScoreService(tourists TouristRepository, logger *logrus.Logger) SafetyScoreService {
	return &safetyScoreService{
		tourists: tourists,
		logger:   logger,
	}
}

// UpdateSafetyScore сохраняет рейтинг, ограниченный диапазоном [0,100], и возвращает сохраненное значение
func (s *safetyScoreService) UpdateSafetyScore(ctx context.Context, touristID uuid.UUID, score int) (int, error) {
	clamped := ClampSafetyScore(score)
	log := s.logger.WithFields(logrus.Fields{
		"service":    "safety",
		"method":     "UpdateSafetyScore",
		"tourist_id": touristID,
		"requested":  score,
		"stored":     clamped,
	})
	log.Info("Updating safety score")

	stored, err := s.tourists.UpdateSafetyScore(ctx, touristID, clamped)
	if err != nil {
		log.WithError(err).Warn("Failed to update safety score")
		return 0, fmt.Errorf("service: could not update safety score: %w", err)
	}

	metrics.RecordSafetyScoreUpdate()
	log.Info("Safety score updated")
	return stored, nil
}

// ClampSafetyScore приводит значение к диапазону рейтинга
func ClampSafetyScore(score int) int {
	return max(models.MinSafetyScore, min(models.MaxSafetyScore, score))
}
