package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	alertService    service.AlertService
	safetyService   service.SafetyScoreService
	riskZones       service.RiskZoneCatalog
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	alertService service.AlertService,
	safetyService service.SafetyScoreService,
	riskZones service.RiskZoneCatalog,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		alertService:    alertService,
		safetyService:   safetyService,
		riskZones:       riskZones,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит ошибки сервиса в HTTP-коды: NotFound - 404, InvalidArgument - 400, прочее - 500
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, service.ErrInvalidArgument):
		log.WithError(err).Warn("Invalid argument")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate разбирает JSON тела и проверяет теги validate. При ошибке ответ уже отправлен.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s ID", what)})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Create a new incident
// @Description Report an incident on behalf of a tourist. Status defaults to Active, priority to Medium. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := CreateRequestToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "tourist not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Trigger an SOS
// @Description Create a Critical Emergency incident and alert every other tourist in the same transaction. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sos body SOSRequest true "SOS request"
// @Success 201 {object} SOSResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/sos [post]
func (h *Handler) createSOSIncident(c *gin.Context) {
	var input SOSRequest
	log := h.logger.WithField("method", "createSOSIncident")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	incident, created, err := h.incidentService.CreateSOSIncident(c.Request.Context(), SOSRequestToModel(input))
	if err != nil {
		h.respondError(c, log, err, "tourist not found")
		return
	}
	c.JSON(http.StatusCreated, SOSResponse{
		Incident:      ModelToIncidentResponse(incident),
		AlertsCreated: created,
	})
}

// @Summary Get a list of incidents
// @Description List incidents, newest first. Optional filters by status and reporting tourist. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status filter (Active or Resolved)"
// @Param tourist_id query string false "Reporting tourist ID"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	var filter models.IncidentFilter
	if status, ok := c.GetQuery("status"); ok {
		if !models.IsValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		filter.Status = &status
	}
	if raw, ok := c.GetQuery("tourist_id"); ok {
		touristID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tourist ID"})
			return
		}
		filter.TouristID = &touristID
	}

	h.writeIncidents(c, log, filter)
}

// @Summary Get incidents reported by a tourist
// @Description List incidents of one tourist, newest first. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Tourist ID"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid tourist ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/{id}/incidents [get]
func (h *Handler) listTouristIncidents(c *gin.Context) {
	touristID, ok := parseID(c, "tourist")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listTouristIncidents").WithField("tourist_id", touristID)

	h.writeIncidents(c, log, models.IncidentFilter{TouristID: &touristID})
}

func (h *Handler) writeIncidents(c *gin.Context, log *logrus.Entry, filter models.IncidentFilter) {
	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err, "incidents not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident details
// @Description Get an incident with the reporting tourist's name and emergency contact. tourist is null when the profile no longer exists. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentDetailsResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncidentDetails(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncidentDetails").WithField("id", id)

	details, err := h.incidentService.GetIncidentDetails(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentDetailsResponse(details))
}

// @Summary Update incident status
// @Description Set status to Active or Resolved. Refreshes updated_at. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [put]
func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	incident, err := h.incidentService.SetStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident priority
// @Description Set priority to Low, Medium, High or Critical. Refreshes updated_at. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param priority body UpdatePriorityRequest true "New priority"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or priority"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/priority [put]
func (h *Handler) updatePriority(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updatePriority").WithField("id", id)

	var input UpdatePriorityRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	incident, err := h.incidentService.SetPriority(c.Request.Context(), id, input.Priority)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Fan out alerts for an incident
// @Description Create one alert for every tourist except the reporter. Each call creates a new set. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 201 {object} FanOutResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/alerts [post]
func (h *Handler) fanOutAlert(c *gin.Context) {
	id, ok := parseID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "fanOutAlert").WithField("id", id)

	created, err := h.alertService.FanOutAlert(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}
	c.JSON(http.StatusCreated, FanOutResponse{
		Message:       fmt.Sprintf("Created %d alerts for nearby tourists", created),
		AlertsCreated: created,
	})
}

// @Summary Get all alerts
// @Description List every alert with its incident, newest first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAllAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAllAlerts")

	alerts, err := h.alertService.ListAllAlerts(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "alerts not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get alerts of a tourist
// @Description List alerts received by a tourist, newest first. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Tourist ID"
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid tourist ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/{id}/alerts [get]
func (h *Handler) listTouristAlerts(c *gin.Context) {
	touristID, ok := parseID(c, "tourist")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listTouristAlerts").WithField("tourist_id", touristID)

	alerts, err := h.alertService.ListAlertsForTourist(c.Request.Context(), touristID)
	if err != nil {
		h.respondError(c, log, err, "alerts not found")
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Update safety score
// @Description Store a tourist's safety score clamped to [0,100]. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Tourist ID"
// @Param score body UpdateSafetyScoreRequest true "New score"
// @Success 200 {object} SafetyScoreResponse
// @Failure 400 {object} map[string]string "Invalid tourist ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/{id}/safety-score [put]
func (h *Handler) updateSafetyScore(c *gin.Context) {
	touristID, ok := parseID(c, "tourist")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateSafetyScore").WithField("tourist_id", touristID)

	var input UpdateSafetyScoreRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	stored, err := h.safetyService.UpdateSafetyScore(c.Request.Context(), touristID, *input.SafetyScore)
	if err != nil {
		h.respondError(c, log, err, "tourist not found")
		return
	}
	c.JSON(http.StatusOK, SafetyScoreResponse{Message: "Safety score updated", NewScore: stored})
}

// @Summary Get risk zones
// @Description Static catalog of risk zones. Requires API key.
// @Tags RiskZones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RiskZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /risk-zones [get]
func (h *Handler) listRiskZones(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToRiskZoneResponses(h.riskZones.ListRiskZones()))
}

// @Summary Get statistics
// @Description Tourist count and incidents by status. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatisticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /statistics [get]
func (h *Handler) getStatistics(c *gin.Context) {
	log := h.logger.WithField("method", "getStatistics")

	stats, err := h.incidentService.GetStatistics(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "statistics not found")
		return
	}
	c.JSON(http.StatusOK, ModelToStatisticsResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
