package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента. Статус и приоритет необязательны (Active и Medium по умолчанию).
type CreateIncidentRequest struct {
	TouristID   uuid.UUID `json:"tourist_id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category" validate:"required,max=50"`
	Latitude    *string   `json:"latitude,omitempty" validate:"omitempty,max=50"`
	Longitude   *string   `json:"longitude,omitempty" validate:"omitempty,max=50"`
	Priority    string    `json:"priority,omitempty"`
	Status      string    `json:"status,omitempty"`
}

// SOSRequest DTO для экстренного вызова
// @Description DTO для экстренного вызова
type SOSRequest struct {
	TouristID uuid.UUID `json:"tourist_id" validate:"required"`
	Message   string    `json:"message,omitempty"`
	Latitude  *string   `json:"latitude,omitempty" validate:"omitempty,max=50"`
	Longitude *string   `json:"longitude,omitempty" validate:"omitempty,max=50"`
}

// UpdateStatusRequest DTO для смены статуса
// @Description DTO для смены статуса (Active или Resolved)
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePriorityRequest DTO для смены приоритета
// @Description DTO для смены приоритета (Low, Medium, High или Critical)
type UpdatePriorityRequest struct {
	Priority string `json:"priority" validate:"required"`
}

// UpdateSafetyScoreRequest DTO для корректировки рейтинга безопасности
// @Description Значение вне диапазона [0,100] будет ограничено
type UpdateSafetyScoreRequest struct {
	SafetyScore *int `json:"safety_score" validate:"required"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID `json:"incident_id"`
	TouristID   uuid.UUID `json:"tourist_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Latitude    *string   `json:"latitude"`
	Longitude   *string   `json:"longitude"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SOSResponse DTO для ответа на экстренный вызов
type SOSResponse struct {
	Incident      *IncidentResponse `json:"incident"`
	AlertsCreated int               `json:"alerts_created"`
}

// FanOutResponse DTO для ответа на рассылку алертов
type FanOutResponse struct {
	Message       string `json:"message"`
	AlertsCreated int    `json:"alerts_created"`
}

// TouristSummaryResponse DTO с данными туриста в карточке инцидента
type TouristSummaryResponse struct {
	TouristID             uuid.UUID `json:"tourist_id"`
	FullName              string    `json:"full_name"`
	EmergencyContactName  *string   `json:"emergency_contact_name"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone"`
}

// IncidentDetailsResponse DTO для карточки инцидента
// @Description tourist равен null, если профиль туриста уже удален
type IncidentDetailsResponse struct {
	Incident *IncidentResponse       `json:"incident"`
	Tourist  *TouristSummaryResponse `json:"tourist"`
}

// AlertResponse DTO алерта вместе с данными инцидента
type AlertResponse struct {
	AlertID    uuid.UUID `json:"alert_id"`
	IncidentID uuid.UUID `json:"incident_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Distance   string    `json:"distance"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// SafetyScoreResponse DTO с сохраненным рейтингом
type SafetyScoreResponse struct {
	Message  string `json:"message"`
	NewScore int    `json:"new_score"`
}

// RiskZoneResponse DTO зоны риска
type RiskZoneResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	RiskLevel    string  `json:"risk_level"`
}

// StatisticsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatisticsResponse struct {
	TotalTourists     int `json:"total_tourists"`
	ActiveIncidents   int `json:"active_incidents"`
	ResolvedIncidents int `json:"resolved_incidents"`
	TotalIncidents    int `json:"total_incidents"`
}
