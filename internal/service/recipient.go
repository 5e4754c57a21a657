package service

import (
	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// RecipientPolicy решает, получает ли турист алерт по инциденту.
// Сюда подключается будущая проверка расстояния, сам fan-out от нее не зависит.
type RecipientPolicy interface {
	Eligible(incident *models.Incident, touristID uuid.UUID) bool
}

// BroadcastPolicy уведомляет всех туристов, кроме автора инцидента.
// Координаты не учитываются.
type BroadcastPolicy struct{}

// Eligible implements RecipientPolicy.
func (BroadcastPolicy) Eligible(incident *models.Incident, touristID uuid.UUID) bool {
	return touristID != incident.TouristID
}
