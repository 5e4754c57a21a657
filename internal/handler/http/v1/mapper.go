package v1

import "github.com/shenikar/tourist_safety_system/internal/models"

// CreateRequestToIncidentModel преобразует DTO создания в доменную модель.
// Пустые статус и приоритет заполняет сервис.
func CreateRequestToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		TouristID:   dto.TouristID,
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Status:      dto.Status,
		Priority:    dto.Priority,
	}
}

// SOSRequestToModel преобразует DTO экстренного вызова
func SOSRequestToModel(dto SOSRequest) models.SOSRequest {
	return models.SOSRequest{
		TouristID: dto.TouristID,
		Message:   dto.Message,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		TouristID:   model.TouristID,
		Title:       model.Title,
		Description: model.Description,
		Category:    model.Category,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Status:      model.Status,
		Priority:    model.Priority,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToIncidentDetailsResponse строит карточку инцидента. Для висячей ссылки tourist = nil.
func ModelToIncidentDetailsResponse(details *models.IncidentDetails) *IncidentDetailsResponse {
	resp := &IncidentDetailsResponse{Incident: ModelToIncidentResponse(details.Incident)}
	if summary, ok := details.Tourist.Get(); ok {
		resp.Tourist = &TouristSummaryResponse{
			TouristID:             summary.TouristID,
			FullName:              summary.FullName,
			EmergencyContactName:  summary.EmergencyContactName,
			EmergencyContactPhone: summary.EmergencyContactPhone,
		}
	}
	return resp
}

// ModelsToAlertResponses преобразует алерты в DTO
func ModelsToAlertResponses(views []*models.AlertView) []*AlertResponse {
	responses := make([]*AlertResponse, len(views))
	for i, v := range views {
		responses[i] = &AlertResponse{
			AlertID:    v.AlertID,
			IncidentID: v.IncidentID,
			Title:      v.Title,
			Category:   v.Category,
			Distance:   v.Distance,
			Status:     v.Status,
			CreatedAt:  v.CreatedAt,
		}
	}
	return responses
}

// ModelsToRiskZoneResponses преобразует зоны риска в DTO
func ModelsToRiskZoneResponses(zones []models.RiskZone) []*RiskZoneResponse {
	responses := make([]*RiskZoneResponse, len(zones))
	for i, z := range zones {
		responses[i] = &RiskZoneResponse{
			ID:           z.ID,
			Name:         z.Name,
			Latitude:     z.Latitude,
			Longitude:    z.Longitude,
			RadiusMeters: z.RadiusMeters,
			RiskLevel:    z.RiskLevel,
		}
	}
	return responses
}

// ModelToStatisticsResponse преобразует статистику в DTO
func ModelToStatisticsResponse(stats *models.Statistics) *StatisticsResponse {
	return &StatisticsResponse{
		TotalTourists:     stats.TotalTourists,
		ActiveIncidents:   stats.ActiveIncidents,
		ResolvedIncidents: stats.ResolvedIncidents,
		TotalIncidents:    stats.TotalIncidents,
	}
}
