package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы инцидента
const (
	StatusActive   = "Active"
	StatusResolved = "Resolved"
)

// Приоритеты инцидента
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Известные категории. Категория не валидируется, клиент может передать любую строку.
const (
	CategoryTheft      = "Theft"
	CategoryHarassment = "Harassment"
	CategoryMedical    = "Medical"
	CategoryAccident   = "Accident"
	CategoryEmergency  = "Emergency"
)

// Incident - происшествие, о котором сообщил турист
type Incident struct {
	ID          uuid.UUID `json:"incident_id"`
	TouristID   uuid.UUID `json:"tourist_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Latitude    *string   `json:"latitude,omitempty"`
	Longitude   *string   `json:"longitude,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsValidStatus проверяет, входит ли статус в допустимый набор
func IsValidStatus(status string) bool {
	return status == StatusActive || status == StatusResolved
}

// IsValidPriority проверяет, входит ли приоритет в допустимый набор
func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// SOSRequest - входные данные экстренного вызова. Пустой Message заменяется текстом по умолчанию.
type SOSRequest struct {
	TouristID uuid.UUID
	Message   string
	Latitude  *string
	Longitude *string
}

// IncidentFilter задает выборку для списка инцидентов. Пустой фильтр - все инциденты.
type IncidentFilter struct {
	Status    *string
	TouristID *uuid.UUID
}

// IncidentDetails - инцидент вместе со сводкой по туристу, который его создал
type IncidentDetails struct {
	Incident *Incident
	Tourist  TouristLookup
}

// Statistics - агрегированные счетчики для панели администратора
type Statistics struct {
	TotalTourists     int
	ActiveIncidents   int
	ResolvedIncidents int
	TotalIncidents    int
}
