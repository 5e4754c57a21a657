package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

type testServices struct {
	incidents *mocks.MockIncidentService
	alerts    *mocks.MockAlertService
	safety    *mocks.MockSafetyScoreService
}

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T) (*testServices, *gin.Engine) {
	ctrl := gomock.NewController(t)
	svc := &testServices{
		incidents: mocks.NewMockIncidentService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
		safety:    mocks.NewMockSafetyScoreService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{testAPIKey},
	}

	handler := NewHandler(svc.incidents, svc.alerts, svc.safety, service.NewRiskZoneCatalog(), logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return svc, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestAuth_MissingKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAuth_InvalidKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.alerts.EXPECT().ListAllAlerts(gomock.Any()).Return([]*models.AlertView{}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil, map[string]string{"Authorization": "Bearer " + testAPIKey})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHealthCheck_NoKeyRequired(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateIncident_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	touristID := uuid.New()
	incidentID := uuid.New()
	lat := "28.61"
	reqBody := CreateIncidentRequest{
		TouristID:   touristID,
		Title:       "Lost wallet",
		Description: "Near the market",
		Category:    models.CategoryTheft,
		Latitude:    &lat,
	}

	svc.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, touristID, inc.TouristID)
			assert.Equal(t, "Lost wallet", inc.Title)
			assert.Equal(t, &lat, inc.Latitude)
			assert.Nil(t, inc.Longitude)
			assert.Empty(t, inc.Priority)
			inc.ID = incidentID
			inc.Status = models.StatusActive
			inc.Priority = models.PriorityMedium
			inc.CreatedAt = time.Now()
			inc.UpdatedAt = inc.CreatedAt
			return nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, models.StatusActive, resp.Status)
	assert.Equal(t, models.PriorityMedium, resp.Priority)
	assert.Nil(t, resp.Longitude)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	svc, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{ // Отсутствует TouristID
		Title:    "Lost wallet",
		Category: models.CategoryTheft,
	}

	svc.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'TouristID' failed on the 'required' tag")
}

func TestCreateIncident_TouristNotFound(t *testing.T) {
	svc, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{TouristID: uuid.New(), Title: "Lost wallet", Category: models.CategoryTheft}

	svc.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("tourist: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "tourist not found")
}

func TestCreateIncident_InvalidPriority(t *testing.T) {
	svc, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{TouristID: uuid.New(), Title: "Lost wallet", Category: models.CategoryTheft, Priority: "Urgent"}

	svc.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("priority %q: %w", "Urgent", service.ErrInvalidArgument)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Urgent")
}

func TestCreateIncident_ServiceError(t *testing.T) {
	svc, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{TouristID: uuid.New(), Title: "Lost wallet", Category: models.CategoryTheft}

	svc.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(errors.New("db down")).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestCreateSOSIncident_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	touristID := uuid.New()
	incident := &models.Incident{
		ID:          uuid.New(),
		TouristID:   touristID,
		Title:       "SOS Alert",
		Description: "Emergency SOS alert triggered",
		Category:    models.CategoryEmergency,
		Status:      models.StatusActive,
		Priority:    models.PriorityCritical,
	}

	svc.incidents.EXPECT().
		CreateSOSIncident(gomock.Any(), models.SOSRequest{TouristID: touristID}).
		Return(incident, 2, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/sos", jsonBody(t, SOSRequest{TouristID: touristID}), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SOSResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.AlertsCreated)
	assert.Equal(t, incident.ID, resp.Incident.ID)
	assert.Equal(t, models.PriorityCritical, resp.Incident.Priority)
}

func TestCreateSOSIncident_TouristNotFound(t *testing.T) {
	svc, router := newTestHandler(t)
	touristID := uuid.New()

	svc.incidents.EXPECT().
		CreateSOSIncident(gomock.Any(), gomock.Any()).
		Return(nil, 0, fmt.Errorf("tourist %s: %w", touristID, service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/sos", jsonBody(t, SOSRequest{TouristID: touristID}), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListIncidents_NoFilter(t *testing.T) {
	svc, router := newTestHandler(t)
	incidents := []*models.Incident{{ID: uuid.New()}, {ID: uuid.New()}}

	svc.incidents.EXPECT().ListIncidents(gomock.Any(), models.IncidentFilter{}).Return(incidents, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, incidents[0].ID, resp[0].ID)
}

func TestListIncidents_ByStatusAndTourist(t *testing.T) {
	svc, router := newTestHandler(t)
	touristID := uuid.New()

	svc.incidents.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
			require.NotNil(t, filter.Status)
			require.NotNil(t, filter.TouristID)
			assert.Equal(t, models.StatusResolved, *filter.Status)
			assert.Equal(t, touristID, *filter.TouristID)
			return []*models.Incident{}, nil
		}).Times(1)

	url := fmt.Sprintf("/api/v1/incidents?status=Resolved&tourist_id=%s", touristID)
	w := makeRequest(router, http.MethodGet, url, nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListIncidents_InvalidStatusFilter(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?status=Closed", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status filter")
}

func TestListTouristIncidents(t *testing.T) {
	svc, router := newTestHandler(t)
	touristID := uuid.New()

	svc.incidents.EXPECT().
		ListIncidents(gomock.Any(), models.IncidentFilter{TouristID: &touristID}).
		Return([]*models.Incident{{ID: uuid.New(), TouristID: touristID}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/tourists/%s/incidents", touristID), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetIncidentDetails_WithTourist(t *testing.T) {
	svc, router := newTestHandler(t)
	incident := &models.Incident{ID: uuid.New(), TouristID: uuid.New(), Title: "Lost wallet"}
	phone := "+91-98100-00000"
	details := &models.IncidentDetails{
		Incident: incident,
		Tourist: models.FoundTourist(models.TouristSummary{
			TouristID:             incident.TouristID,
			FullName:              "Asha Rao",
			EmergencyContactPhone: &phone,
		}),
	}

	svc.incidents.EXPECT().GetIncidentDetails(gomock.Any(), incident.ID).Return(details, nil).Times(1)

	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/incidents/%s", incident.ID), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incident.ID, resp.Incident.ID)
	require.NotNil(t, resp.Tourist)
	assert.Equal(t, "Asha Rao", resp.Tourist.FullName)
	assert.Equal(t, &phone, resp.Tourist.EmergencyContactPhone)
	assert.Nil(t, resp.Tourist.EmergencyContactName)
}

func TestGetIncidentDetails_DanglingTourist(t *testing.T) {
	svc, router := newTestHandler(t)
	incident := &models.Incident{ID: uuid.New(), TouristID: uuid.New()}

	svc.incidents.EXPECT().
		GetIncidentDetails(gomock.Any(), incident.ID).
		Return(&models.IncidentDetails{Incident: incident, Tourist: models.DanglingTourist()}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/incidents/%s", incident.ID), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tourist":null`)
}

func TestGetIncidentDetails_InvalidID(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.incidents.EXPECT().GetIncidentDetails(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/invalid-uuid", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncidentDetails_NotFound(t *testing.T) {
	svc, router := newTestHandler(t)
	incidentID := uuid.New()

	svc.incidents.EXPECT().
		GetIncidentDetails(gomock.Any(), incidentID).
		Return(nil, fmt.Errorf("incident %s: %w", incidentID, service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/incidents/%s", incidentID), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestUpdateStatus_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	incident := &models.Incident{ID: uuid.New(), Status: models.StatusResolved, Priority: models.PriorityMedium}

	svc.incidents.EXPECT().SetStatus(gomock.Any(), incident.ID, models.StatusResolved).Return(incident, nil).Times(1)

	w := makeRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/incidents/%s/status", incident.ID),
		jsonBody(t, UpdateStatusRequest{Status: models.StatusResolved}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusResolved, resp.Status)
}

func TestUpdateStatus_InvalidValue(t *testing.T) {
	svc, router := newTestHandler(t)
	incidentID := uuid.New()

	svc.incidents.EXPECT().
		SetStatus(gomock.Any(), incidentID, "Closed").
		Return(nil, fmt.Errorf("status %q: %w", "Closed", service.ErrInvalidArgument)).
		Times(1)

	w := makeRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/incidents/%s/status", incidentID),
		jsonBody(t, UpdateStatusRequest{Status: "Closed"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, router := newTestHandler(t)
	incidentID := uuid.New()

	svc.incidents.EXPECT().
		SetStatus(gomock.Any(), incidentID, "Closed").
		Return(nil, fmt.Errorf("incident: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/incidents/%s/status", incidentID),
		jsonBody(t, UpdateStatusRequest{Status: "Closed"}), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus_MissingBody(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.incidents.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/incidents/%s/status", uuid.New()),
		bytes.NewBufferString(`{}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Status' failed on the 'required' tag")
}

func TestUpdatePriority_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	incident := &models.Incident{ID: uuid.New(), Status: models.StatusActive, Priority: models.PriorityHigh}

	svc.incidents.EXPECT().SetPriority(gomock.Any(), incident.ID, models.PriorityHigh).Return(incident, nil).Times(1)

	w := makeRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/incidents/%s/priority", incident.ID),
		jsonBody(t, UpdatePriorityRequest{Priority: models.PriorityHigh}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.PriorityHigh, resp.Priority)
}

func TestFanOutAlert_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	incidentID := uuid.New()

	svc.alerts.EXPECT().FanOutAlert(gomock.Any(), incidentID).Return(2, nil).Times(1)

	w := makeRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/incidents/%s/alerts", incidentID), nil, authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Created 2 alerts for nearby tourists","alerts_created":2}`, w.Body.String())
}

func TestFanOutAlert_NotFound(t *testing.T) {
	svc, router := newTestHandler(t)
	incidentID := uuid.New()

	svc.alerts.EXPECT().
		FanOutAlert(gomock.Any(), incidentID).
		Return(0, fmt.Errorf("service: could not fan out alerts: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/incidents/%s/alerts", incidentID), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTouristAlerts(t *testing.T) {
	svc, router := newTestHandler(t)
	touristID := uuid.New()
	view := &models.AlertView{
		AlertID:    uuid.New(),
		IncidentID: uuid.New(),
		Title:      "SOS Alert",
		Category:   models.CategoryEmergency,
		Distance:   "~1km",
		Status:     models.StatusActive,
		CreatedAt:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	svc.alerts.EXPECT().ListAlertsForTourist(gomock.Any(), touristID).Return([]*models.AlertView{view}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/tourists/%s/alerts", touristID), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, view.AlertID, resp[0].AlertID)
	assert.Equal(t, "~1km", resp[0].Distance)
	assert.True(t, view.CreatedAt.Equal(resp[0].CreatedAt))
}

func TestListAllAlerts_ServiceError(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.alerts.EXPECT().ListAllAlerts(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateSafetyScore_Success(t *testing.T) {
	svc, router := newTestHandler(t)
	touristID := uuid.New()
	score := 500

	svc.safety.EXPECT().UpdateSafetyScore(gomock.Any(), touristID, 500).Return(100, nil).Times(1)

	w := makeRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/tourists/%s/safety-score", touristID),
		jsonBody(t, UpdateSafetyScoreRequest{SafetyScore: &score}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Safety score updated","new_score":100}`, w.Body.String())
}

func TestUpdateSafetyScore_ZeroIsAccepted(t *testing.T) {
	svc, router := newTestHandler(t)
	touristID := uuid.New()

	svc.safety.EXPECT().UpdateSafetyScore(gomock.Any(), touristID, 0).Return(0, nil).Times(1)

	w := makeRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/tourists/%s/safety-score", touristID),
		bytes.NewBufferString(`{"safety_score":0}`), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSafetyScore_MissingScore(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.safety.EXPECT().UpdateSafetyScore(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/tourists/%s/safety-score", uuid.New()),
		bytes.NewBufferString(`{}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSafetyScore_TouristNotFound(t *testing.T) {
	svc, router := newTestHandler(t)
	touristID := uuid.New()

	svc.safety.EXPECT().
		UpdateSafetyScore(gomock.Any(), touristID, 50).
		Return(0, fmt.Errorf("tourist %s: %w", touristID, service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/tourists/%s/safety-score", touristID),
		bytes.NewBufferString(`{"safety_score":50}`), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "tourist not found")
}

func TestListRiskZones(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/risk-zones", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RiskZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, len(service.NewRiskZoneCatalog().ListRiskZones()))
	assert.NotEmpty(t, resp[0].RiskLevel)
}

func TestGetStatistics(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.incidents.EXPECT().
		GetStatistics(gomock.Any()).
		Return(&models.Statistics{TotalTourists: 3, ActiveIncidents: 2, ResolvedIncidents: 1, TotalIncidents: 3}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/statistics", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"total_tourists":3,"active_incidents":2,"resolved_incidents":1,"total_incidents":3}`,
		w.Body.String())
}
