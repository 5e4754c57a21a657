package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T, policy RecipientPolicy) (*alertService, *testDeps) {
	d := newTestDeps(t)
	engine := NewFanOutEngine(d.tourists, d.alerts, policy)
	svc := NewAlertService(d.incidents, d.alerts, engine, d.tx, d.logger, d.cfg, d.publisher)
	return svc.(*alertService), d
}

// onlyTourist пропускает единственного получателя
type onlyTourist struct {
	id uuid.UUID
}

func (p onlyTourist) Eligible(_ *models.Incident, touristID uuid.UUID) bool {
	return touristID == p.id
}

func TestFanOutAlert_SkipsReporter(t *testing.T) {
	// Подготовка: A сообщил о краже, B и C должны получить алерты
	service, d := newTestAlertService(t, nil)
	ctx := context.Background()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	incident := &models.Incident{ID: uuid.New(), TouristID: a, Title: "Lost wallet", Category: models.CategoryTheft}

	// Ожидания
	d.incidents.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil).Times(1)
	d.tourists.EXPECT().ListIDs(ctx).Return([]uuid.UUID{a, b, c}, nil).Times(1)
	d.alerts.EXPECT().
		CreateBatch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alerts []*models.Alert) (int64, error) {
			require.Len(t, alerts, 2)
			for _, alert := range alerts {
				assert.NotEqual(t, a, alert.TouristID)
				assert.Equal(t, incident.ID, alert.IncidentID)
				assert.Equal(t, "2.5km", alert.Distance)
				assert.NotEqual(t, uuid.Nil, alert.ID)
			}
			assert.NotEqual(t, alerts[0].ID, alerts[1].ID)
			return 2, nil
		}).Times(1)
	d.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventAlertsFannedOut, event.Type)
			assert.Equal(t, 2, event.AlertsCreated)
		}).Return(nil).Times(1)

	// Действие
	created, err := service.FanOutAlert(ctx, incident.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 1, d.tx.calls)
}

func TestFanOutAlert_RepeatedRunCreatesSecondSet(t *testing.T) {
	service, d := newTestAlertService(t, nil)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	incident := &models.Incident{ID: uuid.New(), TouristID: a}

	d.incidents.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil).Times(2)
	d.tourists.EXPECT().ListIDs(ctx).Return([]uuid.UUID{a, b}, nil).Times(2)
	d.alerts.EXPECT().CreateBatch(ctx, gomock.Len(1)).Return(int64(1), nil).Times(2)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	first, err := service.FanOutAlert(ctx, incident.ID)
	require.NoError(t, err)
	second, err := service.FanOutAlert(ctx, incident.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestFanOutAlert_NoOtherTourists(t *testing.T) {
	service, d := newTestAlertService(t, nil)
	ctx := context.Background()
	a := uuid.New()
	incident := &models.Incident{ID: uuid.New(), TouristID: a}

	d.incidents.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil)
	d.tourists.EXPECT().ListIDs(ctx).Return([]uuid.UUID{a}, nil)
	d.alerts.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Times(0)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	created, err := service.FanOutAlert(ctx, incident.ID)

	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestFanOutAlert_CustomPolicy(t *testing.T) {
	b := uuid.New()
	service, d := newTestAlertService(t, onlyTourist{id: b})
	ctx := context.Background()
	incident := &models.Incident{ID: uuid.New(), TouristID: uuid.New()}

	d.incidents.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil)
	d.tourists.EXPECT().ListIDs(ctx).Return([]uuid.UUID{uuid.New(), b, uuid.New()}, nil)
	d.alerts.EXPECT().
		CreateBatch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alerts []*models.Alert) (int64, error) {
			require.Len(t, alerts, 1)
			assert.Equal(t, b, alerts[0].TouristID)
			return 1, nil
		})
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	created, err := service.FanOutAlert(ctx, incident.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestFanOutAlert_IncidentNotFound(t *testing.T) {
	service, d := newTestAlertService(t, nil)
	ctx := context.Background()
	incidentID := uuid.New()

	d.incidents.EXPECT().GetByID(ctx, incidentID).Return(nil, fmt.Errorf("incident: %w", ErrNotFound))
	d.tourists.EXPECT().ListIDs(gomock.Any()).Times(0)
	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	created, err := service.FanOutAlert(ctx, incidentID)

	require.Error(t, err)
	assert.Zero(t, created)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFanOutAlert_BatchFailure(t *testing.T) {
	service, d := newTestAlertService(t, nil)
	ctx := context.Background()
	incident := &models.Incident{ID: uuid.New(), TouristID: uuid.New()}

	d.incidents.EXPECT().GetByID(ctx, incident.ID).Return(incident, nil)
	d.tourists.EXPECT().ListIDs(ctx).Return([]uuid.UUID{uuid.New()}, nil)
	d.alerts.EXPECT().CreateBatch(ctx, gomock.Any()).Return(int64(0), errors.New("copy failed"))
	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.FanOutAlert(ctx, incident.ID)

	assert.ErrorContains(t, err, "could not fan out alerts")
}

func TestListAlertsForTourist_DropsOrphans(t *testing.T) {
	service, d := newTestAlertService(t, nil)
	ctx := context.Background()
	touristID := uuid.New()
	now := time.Now()
	incident := &models.Incident{ID: uuid.New(), Title: "Lost wallet", Category: models.CategoryTheft, Status: models.StatusActive}
	records := []*models.AlertRecord{
		{
			Alert:    models.Alert{ID: uuid.New(), IncidentID: incident.ID, TouristID: touristID, Distance: "2.5km", CreatedAt: now},
			Incident: incident,
		},
		{
			Alert: models.Alert{ID: uuid.New(), IncidentID: uuid.New(), TouristID: touristID, Distance: "2.5km", CreatedAt: now.Add(-time.Minute)},
		},
	}

	d.alerts.EXPECT().List(ctx, &touristID).Return(records, nil)

	views, err := service.ListAlertsForTourist(ctx, touristID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, &models.AlertView{
		AlertID:    records[0].Alert.ID,
		IncidentID: incident.ID,
		Title:      "Lost wallet",
		Category:   models.CategoryTheft,
		Distance:   "2.5km",
		Status:     models.StatusActive,
		CreatedAt:  now,
	}, views[0])
}

func TestListAllAlerts_KeepsRepositoryOrder(t *testing.T) {
	service, d := newTestAlertService(t, nil)
	ctx := context.Background()
	incident := &models.Incident{ID: uuid.New(), Title: "SOS Alert", Category: models.CategoryEmergency, Status: models.StatusResolved}
	newer := &models.AlertRecord{Alert: models.Alert{ID: uuid.New(), IncidentID: incident.ID}, Incident: incident}
	older := &models.AlertRecord{Alert: models.Alert{ID: uuid.New(), IncidentID: incident.ID}, Incident: incident}

	d.alerts.EXPECT().List(ctx, (*uuid.UUID)(nil)).Return([]*models.AlertRecord{newer, older}, nil)

	views, err := service.ListAllAlerts(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, newer.Alert.ID, views[0].AlertID)
	assert.Equal(t, older.Alert.ID, views[1].AlertID)
	assert.Equal(t, models.StatusResolved, views[0].Status)
}

func TestListAllAlerts_RepositoryError(t *testing.T) {
	service, d := newTestAlertService(t, nil)
	ctx := context.Background()

	d.alerts.EXPECT().List(ctx, gomock.Nil()).Return(nil, errors.New("db down"))

	views, err := service.ListAllAlerts(ctx)

	assert.Nil(t, views)
	assert.ErrorContains(t, err, "could not list alerts")
}

func TestThreeTourists_ReportFanOutAndSOS(t *testing.T) {
	// Туристы A, B и C. A сообщает о краже, власти рассылают алерты, затем A вызывает SOS.
	d := newTestDeps(t)
	engine := NewFanOutEngine(d.tourists, d.alerts, nil)
	incidents := NewIncidentService(d.incidents, d.tourists, engine, d.tx, d.logger, d.cfg, d.publisher)
	alerts := NewAlertService(d.incidents, d.alerts, engine, d.tx, d.logger, d.cfg, d.publisher)
	ctx := context.Background()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	stored := make(map[uuid.UUID]*models.Incident)

	d.tourists.EXPECT().Exists(gomock.Any(), a).Return(true, nil).Times(2)
	d.tourists.EXPECT().ListIDs(gomock.Any()).Return([]uuid.UUID{a, b, c}, nil).Times(2)
	d.incidents.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = uuid.New()
			stored[inc.ID] = inc
			return nil
		}).Times(2)
	d.incidents.EXPECT().
		GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Incident, error) {
			return stored[id], nil
		}).Times(1)
	d.alerts.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []*models.Alert) (int64, error) {
			recipients := []uuid.UUID{batch[0].TouristID, batch[1].TouristID}
			assert.ElementsMatch(t, []uuid.UUID{b, c}, recipients)
			return int64(len(batch)), nil
		}).Times(2)
	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	i1 := &models.Incident{TouristID: a, Title: "Lost wallet", Category: models.CategoryTheft}
	require.NoError(t, incidents.CreateIncident(ctx, i1))
	assert.Equal(t, models.StatusActive, i1.Status)
	assert.Equal(t, models.PriorityMedium, i1.Priority)

	fanned, err := alerts.FanOutAlert(ctx, i1.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fanned)

	i2, sent, err := incidents.CreateSOSIncident(ctx, models.SOSRequest{TouristID: a, Message: "Help"})
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, models.CategoryEmergency, i2.Category)
	assert.Equal(t, models.PriorityCritical, i2.Priority)
	assert.Equal(t, "Help", i2.Description)
	assert.NotEqual(t, i1.ID, i2.ID)
}
