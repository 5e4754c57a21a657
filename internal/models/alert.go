package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert - уведомление конкретному туристу о произошедшем инциденте.
// IsRead хранится, но ни одна операция его не читает и не меняет.
type Alert struct {
	ID         uuid.UUID `json:"alert_id"`
	IncidentID uuid.UUID `json:"incident_id"`
	TouristID  uuid.UUID `json:"tourist_id"`
	Distance   string    `json:"distance"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// AlertRecord - алерт вместе с инцидентом, на который он ссылается.
// Incident равен nil, если инцидент был удален в обход ядра.
type AlertRecord struct {
	Alert    Alert
	Incident *Incident
}

// AlertView - денормализованное представление алерта для выдачи клиенту
type AlertView struct {
	AlertID    uuid.UUID
	IncidentID uuid.UUID
	Title      string
	Category   string
	Distance   string
	Status     string
	CreatedAt  time.Time
}
