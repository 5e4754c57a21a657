package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// FanOutEngine создает по одному алерту на каждого подходящего получателя.
// Вызывающий обязан запускать Run внутри транзакции, чтобы вставка была атомарной.
type FanOutEngine struct {
	tourists TouristRepository
	alerts   AlertRepository
	policy   RecipientPolicy
	now      func() time.Time
}

// NewFanOutEngine создает движок рассылки. policy == nil означает BroadcastPolicy.
func NewFanOutEngine(tourists TouristRepository, alerts AlertRepository, policy RecipientPolicy) *FanOutEngine {
	if policy == nil {
		policy = BroadcastPolicy{}
	}
	return &FanOutEngine{
		tourists: tourists,
		alerts:   alerts,
		policy:   policy,
		now:      time.Now,
	}
}

// Run пишет алерты по инциденту одним пакетом и возвращает их количество.
// Повторный запуск создает еще один полный набор.
func (e *FanOutEngine) Run(ctx context.Context, incident *models.Incident, distance string) (int, error) {
	ids, err := e.tourists.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("fan-out: could not list tourists: %w", err)
	}

	createdAt := e.now().UTC()
	alerts := make([]*models.Alert, 0, len(ids))
	for _, id := range ids {
		if !e.policy.Eligible(incident, id) {
			continue
		}
		alerts = append(alerts, &models.Alert{
			ID:         uuid.New(),
			IncidentID: incident.ID,
			TouristID:  id,
			Distance:   distance,
			CreatedAt:  createdAt,
		})
	}
	if len(alerts) == 0 {
		return 0, nil
	}

	n, err := e.alerts.CreateBatch(ctx, alerts)
	if err != nil {
		return 0, fmt.Errorf("fan-out: could not store alerts: %w", err)
	}
	return int(n), nil
}
