package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/shenikar/tourist_safety_system/pkg/metrics"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks

// AlertService определяет контракт рассылки и выдачи алертов
type AlertService interface {
	FanOutAlert(ctx context.Context, incidentID uuid.UUID) (int, error)
	ListAlertsForTourist(ctx context.Context, touristID uuid.UUID) ([]*models.AlertView, error)
	ListAllAlerts(ctx context.Context) ([]*models.AlertView, error)
}

type alertService struct {
	incidents IncidentRepository
	alerts    AlertRepository
	fanOut    *FanOutEngine
	tx        Transactor
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	now       func() time.Time
}

func NewAlertService(
	incidents IncidentRepository,
	alerts AlertRepository,
	fanOut *FanOutEngine,
	tx Transactor,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
) AlertService {
	return &alertService{
		incidents: incidents,
		alerts:    alerts,
		fanOut:    fanOut,
		tx:        tx,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

// FanOutAlert рассылает алерты по существующему инциденту всем подходящим туристам.
// Либо записываются все алерты, либо ни одного.
func (s *alertService) FanOutAlert(ctx context.Context, incidentID uuid.UUID) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "alert",
		"method":      "FanOutAlert",
		"incident_id": incidentID,
	})
	log.Info("Starting alert fan-out")

	var (
		incident *models.Incident
		created  int
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		incident, err = s.incidents.GetByID(ctx, incidentID)
		if err != nil {
			return err
		}
		created, err = s.fanOut.Run(ctx, incident, s.cfg.AlertDistance)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Alert fan-out failed")
		return 0, fmt.Errorf("service: could not fan out alerts: %w", err)
	}

	metrics.RecordAlertsCreated(created)
	log.WithField("alerts_created", created).Info("Alert fan-out completed")

	event := webhook.WebhookEvent{
		Type:          webhook.EventAlertsFannedOut,
		Incident:      incident,
		AlertsCreated: created,
		Timestamp:     s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish webhook event")
	}
	return created, nil
}

// ListAlertsForTourist возвращает алерты туриста, новые первыми
func (s *alertService) ListAlertsForTourist(ctx context.Context, touristID uuid.UUID) ([]*models.AlertView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "ListAlertsForTourist",
		"tourist_id": touristID,
	})
	return s.list(ctx, log, &touristID)
}

// ListAllAlerts возвращает все алерты, новые первыми
func (s *alertService) ListAllAlerts(ctx context.Context) ([]*models.AlertView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListAllAlerts",
	})
	return s.list(ctx, log, nil)
}

func (s *alertService) list(ctx context.Context, log *logrus.Entry, touristID *uuid.UUID) ([]*models.AlertView, error) {
	log.Info("Listing alerts")

	records, err := s.alerts.List(ctx, touristID)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	views := joinAlerts(records)
	if dropped := len(records) - len(views); dropped > 0 {
		log.WithField("dropped", dropped).Debug("Skipped alerts of missing incidents")
	}
	log.WithField("count", len(views)).Info("Alerts listed successfully")
	return views, nil
}

// joinAlerts строит денормализованные алерты, молча пропуская те,
// чей инцидент не найден
func joinAlerts(records []*models.AlertRecord) []*models.AlertView {
	views := make([]*models.AlertView, 0, len(records))
	for _, r := range records {
		if r.Incident == nil {
			continue
		}
		views = append(views, &models.AlertView{
			AlertID:    r.Alert.ID,
			IncidentID: r.Alert.IncidentID,
			Title:      r.Incident.Title,
			Category:   r.Incident.Category,
			Distance:   r.Alert.Distance,
			Status:     r.Incident.Status,
			CreatedAt:  r.Alert.CreatedAt,
		})
	}
	return views
}
