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

const (
	sosTitle              = "SOS Alert"
	sosDefaultDescription = "Emergency SOS alert triggered"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentService определяет контракт бизнес-логики жизненного цикла инцидентов
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	CreateSOSIncident(ctx context.Context, req models.SOSRequest) (*models.Incident, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error)
	SetPriority(ctx context.Context, id uuid.UUID, priority string) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	GetIncidentDetails(ctx context.Context, id uuid.UUID) (*models.IncidentDetails, error)
	GetStatistics(ctx context.Context) (*models.Statistics, error)
}

type incidentService struct {
	repo      IncidentRepository
	tourists  TouristRepository
	fanOut    *FanOutEngine
	tx        Transactor
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	now       func() time.Time
}

func NewIncidentService(
	repo IncidentRepository,
	tourists TouristRepository,
	fanOut *FanOutEngine,
	tx Transactor,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
) IncidentService {
	return &incidentService{
		repo:      repo,
		tourists:  tourists,
		fanOut:    fanOut,
		tx:        tx,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateIncident создает инцидент от имени туриста. Алерты здесь не рассылаются.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "CreateIncident",
		"tourist_id": incident.TouristID,
		"category":   incident.Category,
	})
	log.Info("Attempting to create a new incident")

	if incident.Status == "" {
		incident.Status = models.StatusActive
	}
	if incident.Priority == "" {
		incident.Priority = models.PriorityMedium
	}
	if !models.IsValidStatus(incident.Status) {
		return fmt.Errorf("service: status %q must be Active or Resolved: %w", incident.Status, ErrInvalidArgument)
	}
	if !models.IsValidPriority(incident.Priority) {
		return fmt.Errorf("service: priority %q must be Low, Medium, High or Critical: %w", incident.Priority, ErrInvalidArgument)
	}

	s.stampCreated(incident)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureTourist(ctx, incident.TouristID); err != nil {
			return err
		}
		return s.repo.Create(ctx, incident)
	})
	if err != nil {
		log.WithError(err).Error("Failed to create incident")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	metrics.RecordIncidentCreated("manual", incident.Category)
	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	s.publish(ctx, webhook.EventIncidentCreated, incident, 0)
	return nil
}

// CreateSOSIncident создает экстренный инцидент и в той же транзакции рассылает алерты
func (s *incidentService) CreateSOSIncident(ctx context.Context, req models.SOSRequest) (*models.Incident, int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "CreateSOSIncident",
		"tourist_id": req.TouristID,
	})
	log.Warn("SOS received")

	description := req.Message
	if description == "" {
		description = sosDefaultDescription
	}
	incident := &models.Incident{
		TouristID:   req.TouristID,
		Title:       sosTitle,
		Description: description,
		Category:    models.CategoryEmergency,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      models.StatusActive,
		Priority:    models.PriorityCritical,
	}
	s.stampCreated(incident)

	var alertsCreated int
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureTourist(ctx, req.TouristID); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, incident); err != nil {
			return err
		}
		n, err := s.fanOut.Run(ctx, incident, s.cfg.SOSAlertDistance)
		if err != nil {
			return err
		}
		alertsCreated = n
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to create SOS incident")
		return nil, 0, fmt.Errorf("service: could not create SOS incident: %w", err)
	}

	metrics.RecordIncidentCreated("sos", incident.Category)
	metrics.RecordAlertsCreated(alertsCreated)
	log.WithFields(logrus.Fields{
		"incident_id":    incident.ID,
		"alerts_created": alertsCreated,
	}).Info("SOS incident created and alerts sent")
	s.publish(ctx, webhook.EventIncidentSOS, incident, alertsCreated)
	return incident, alertsCreated, nil
}

// SetStatus меняет статус инцидента. Конкурентные изменения - last writer wins.
func (s *incidentService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SetStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to update status of a non-existent incident")
		return nil, fmt.Errorf("service: incident %s not found for status update: %w", id, err)
	}
	if !models.IsValidStatus(status) {
		log.Warn("Rejected invalid status")
		return nil, fmt.Errorf("service: invalid status %q, must be 'Active' or 'Resolved': %w", status, ErrInvalidArgument)
	}

	incident, err := s.repo.UpdateStatus(ctx, id, status, s.now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to update incident status in repository")
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}
	s.refreshCache(ctx, log, incident)

	metrics.RecordIncidentTransition("status", status)
	log.Info("Incident status updated successfully")
	s.publish(ctx, webhook.EventStatusChanged, incident, 0)
	return incident, nil
}

// SetPriority меняет приоритет инцидента
func (s *incidentService) SetPriority(ctx context.Context, id uuid.UUID, priority string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SetPriority",
		"incident_id": id,
		"priority":    priority,
	})
	log.Info("Attempting to update incident priority")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to update priority of a non-existent incident")
		return nil, fmt.Errorf("service: incident %s not found for priority update: %w", id, err)
	}
	if !models.IsValidPriority(priority) {
		log.Warn("Rejected invalid priority")
		return nil, fmt.Errorf("service: invalid priority %q, must be 'Low', 'Medium', 'High' or 'Critical': %w", priority, ErrInvalidArgument)
	}

	incident, err := s.repo.UpdatePriority(ctx, id, priority, s.now().UTC())
	if err != nil {
		log.WithError(err).Error("Failed to update incident priority in repository")
		return nil, fmt.Errorf("service: could not update incident priority: %w", err)
	}
	s.refreshCache(ctx, log, incident)

	metrics.RecordIncidentTransition("priority", priority)
	log.Info("Incident priority updated successfully")
	s.publish(ctx, webhook.EventPriorityChanged, incident, 0)
	return incident, nil
}

// ListIncidents возвращает инциденты по фильтру, новые первыми. Пагинации нет.
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})
	if filter.Status != nil {
		log = log.WithField("status", *filter.Status)
	}
	if filter.TouristID != nil {
		log = log.WithField("tourist_id", *filter.TouristID)
	}
	log.Info("Listing incidents")

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// GetIncidentDetails возвращает инцидент и сводку по туристу.
// Отсутствующий турист - не ошибка, а висячая ссылка.
func (s *incidentService) GetIncidentDetails(ctx context.Context, id uuid.UUID) (*models.IncidentDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncidentDetails",
		"incident_id": id,
	})
	log.Info("Fetching incident details")

	incident, err := s.getIncident(ctx, log, id)
	if err != nil {
		return nil, err
	}

	summary, err := s.tourists.GetSummary(ctx, incident.TouristID)
	if err != nil {
		log.WithError(err).Error("Failed to load reporting tourist")
		return nil, fmt.Errorf("service: could not get tourist summary: %w", err)
	}

	details := &models.IncidentDetails{Incident: incident, Tourist: models.DanglingTourist()}
	if summary != nil {
		details.Tourist = models.FoundTourist(*summary)
	} else {
		log.WithField("tourist_id", incident.TouristID).Warn("Incident references a missing tourist")
	}

	log.Info("Incident details fetched successfully")
	return details, nil
}

// GetStatistics возвращает счетчики туристов и инцидентов
func (s *incidentService) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStatistics",
	})

	tourists, err := s.tourists.Count(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count tourists")
		return nil, fmt.Errorf("service: could not count tourists: %w", err)
	}
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count incidents")
		return nil, fmt.Errorf("service: could not count incidents: %w", err)
	}

	stats := &models.Statistics{
		TotalTourists:     tourists,
		ActiveIncidents:   byStatus[models.StatusActive],
		ResolvedIncidents: byStatus[models.StatusResolved],
	}
	stats.TotalIncidents = stats.ActiveIncidents + stats.ResolvedIncidents
	return stats, nil
}

// getIncident читает инцидент сначала из кеша, затем из бд.
// Прочитанное из бд значение кладется в кеш без перезаписи: если между чтением и записью
// инцидент изменили, в кеше уже лежит новое значение.
func (s *incidentService) getIncident(ctx context.Context, log *logrus.Entry, id uuid.UUID) (*models.Incident, error) {
	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache, falling back to database")
	}
	if cached != nil {
		log.Debug("Incident cache hit")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

func (s *incidentService) ensureTourist(ctx context.Context, id uuid.UUID) error {
	exists, err := s.tourists.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("tourist %s: %w", id, ErrNotFound)
	}
	return nil
}

// stampCreated задает время создания по часам сервиса; по ним же считается updated_at
func (s *incidentService) stampCreated(incident *models.Incident) {
	incident.CreatedAt = s.now().UTC()
	incident.UpdatedAt = incident.CreatedAt
}

// refreshCache записывает измененный инцидент в кеш. Если записать не удалось,
// ключ удаляется, чтобы следующее чтение пошло в бд.
func (s *incidentService) refreshCache(ctx context.Context, log *logrus.Entry, incident *models.Incident) {
	err := s.repo.RefreshIncidentCache(ctx, incident)
	if err == nil {
		return
	}
	log.WithError(err).Warn("Failed to refresh incident cache, invalidating")
	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Error("Failed to invalidate incident cache, stale entry may be served until TTL")
	}
}

// publish отправляет событие после коммита. Ошибка публикации не влияет на результат операции.
func (s *incidentService) publish(ctx context.Context, eventType string, incident *models.Incident, alerts int) {
	event := webhook.WebhookEvent{
		Type:          eventType,
		Incident:      incident,
		AlertsCreated: alerts,
		Timestamp:     s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_type", eventType).Error("Failed to publish webhook event")
	}
}
