package models

// Уровни риска зоны
const (
	RiskLow        = "Low"
	RiskMedium     = "Medium"
	RiskHigh       = "High"
	RiskRestricted = "Restricted"
)

// RiskZone - статичная географическая зона с уровнем риска
type RiskZone struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	RiskLevel    string  `json:"risk_level"`
}
