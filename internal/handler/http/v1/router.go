package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.POST("/sos", h.createSOSIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncidentDetails)
		incidents.PUT("/:id/status", h.updateStatus)
		incidents.PUT("/:id/priority", h.updatePriority)
		incidents.POST("/:id/alerts", h.fanOutAlert)
	}

	tourists := protected.Group("/tourists")
	{
		tourists.GET("/:id/alerts", h.listTouristAlerts)
		tourists.GET("/:id/incidents", h.listTouristIncidents)
		tourists.PUT("/:id/safety-score", h.updateSafetyScore)
	}

	protected.GET("/alerts", h.listAllAlerts)
	protected.GET("/risk-zones", h.listRiskZones)
	protected.GET("/statistics", h.getStatistics)
}
