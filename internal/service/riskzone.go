package service

import "github.com/shenikar/tourist_safety_system/internal/models"

// RiskZoneCatalog - справочник зон риска
type RiskZoneCatalog interface {
	ListRiskZones() []models.RiskZone
}

type staticRiskZoneCatalog struct {
	zones []models.RiskZone
}

// NewRiskZoneCatalog возвращает каталог с зашитым списком зон
func NewRiskZoneCatalog() RiskZoneCatalog {
	return &staticRiskZoneCatalog{zones: defaultRiskZones}
}

// ListRiskZones возвращает копию списка, чтобы вызывающий не мог изменить справочник
func (c *staticRiskZoneCatalog) ListRiskZones() []models.RiskZone {
	out := make([]models.RiskZone, len(c.zones))
	copy(out, c.zones)
	return out
}

var defaultRiskZones = []models.RiskZone{
	{ID: "zone-001", Name: "Old City Market", Latitude: 28.6562, Longitude: 77.2410, RadiusMeters: 800, RiskLevel: models.RiskMedium},
	{ID: "zone-002", Name: "Railway Station Area", Latitude: 28.6430, Longitude: 77.2194, RadiusMeters: 600, RiskLevel: models.RiskHigh},
	{ID: "zone-003", Name: "Riverside Ghats", Latitude: 25.3109, Longitude: 83.0107, RadiusMeters: 1200, RiskLevel: models.RiskMedium},
	{ID: "zone-004", Name: "Hill Trek Trailhead", Latitude: 32.2432, Longitude: 77.1892, RadiusMeters: 2000, RiskLevel: models.RiskHigh},
	{ID: "zone-005", Name: "Border Military Area", Latitude: 34.1526, Longitude: 77.5771, RadiusMeters: 5000, RiskLevel: models.RiskRestricted},
	{ID: "zone-006", Name: "Heritage Fort Complex", Latitude: 26.9855, Longitude: 75.8513, RadiusMeters: 1000, RiskLevel: models.RiskLow},
}
