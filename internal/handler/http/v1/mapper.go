package v1

import "github.com/shenikar/drive_journal/internal/models"

func dtoToTripPoint(p TripPointDTO) models.TripPoint {
	return models.TripPoint{Address: p.Address, Latitude: p.Latitude, Longitude: p.Longitude}
}

func tripPointToDTO(p models.TripPoint) TripPointDTO {
	return TripPointDTO{Address: p.Address, Latitude: p.Latitude, Longitude: p.Longitude}
}

// DTOToTripModel преобразует DTO поездки в доменную модель
func DTOToTripModel(dto TripRequest) *models.Trip {
	return &models.Trip{
		DriverID:        dto.DriverID,
		VehicleID:       dto.VehicleID,
		StartedAt:       dto.StartedAt,
		EndedAt:         dto.EndedAt,
		Start:           dtoToTripPoint(dto.Start),
		End:             dtoToTripPoint(dto.End),
		DistanceKm:      dto.DistanceKm,
		DurationMinutes: dto.DurationMinutes,
		Purpose:         dto.Purpose,
	}
}

// ModelToTripResponse преобразует доменную модель в DTO для ответа
func ModelToTripResponse(model *models.Trip) *TripResponse {
	return &TripResponse{
		ID:              model.ID,
		DriverID:        model.DriverID,
		VehicleID:       model.VehicleID,
		StartedAt:       model.StartedAt,
		EndedAt:         model.EndedAt,
		Start:           tripPointToDTO(model.Start),
		End:             tripPointToDTO(model.End),
		DistanceKm:      model.DistanceKm,
		DurationMinutes: model.DurationMinutes,
		Purpose:         model.Purpose,
		Category:        model.Category,
		IsFlagged:       model.IsFlagged,
		FlagReason:      model.FlagReason,
		Status:          model.Status,
		ReviewedBy:      model.ReviewedBy,
		ReviewedAt:      model.ReviewedAt,
		EvaluatedAt:     model.EvaluatedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// ModelsToTripResponses преобразует слайс моделей в слайс DTO
func ModelsToTripResponses(trips []*models.Trip) []*TripResponse {
	responses := make([]*TripResponse, len(trips))
	for i, trip := range trips {
		responses[i] = ModelToTripResponse(trip)
	}
	return responses
}

// DTOToGeofenceModel преобразует DTO геозоны в доменную модель. Без is_active геозона активна
func DTOToGeofenceModel(dto GeofenceRequest) *models.Geofence {
	active := true
	if dto.IsActive != nil {
		active = *dto.IsActive
	}
	return &models.Geofence{
		Name:         dto.Name,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		RadiusMeters: dto.RadiusMeters,
		AutoCategory: dto.AutoCategory,
		IsActive:     active,
	}
}

func ModelToGeofenceResponse(model *models.Geofence) *GeofenceResponse {
	return &GeofenceResponse{
		ID:           model.ID,
		Name:         model.Name,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		RadiusMeters: model.RadiusMeters,
		IsActive:     model.IsActive,
		AutoCategory: model.AutoCategory,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ModelsToGeofenceResponses(fences []*models.Geofence) []*GeofenceResponse {
	responses := make([]*GeofenceResponse, len(fences))
	for i, fence := range fences {
		responses[i] = ModelToGeofenceResponse(fence)
	}
	return responses
}

// DTOToPositionSamples преобразует отметки. defaultEntity подставляется, если entity_id не задан
func DTOToPositionSamples(dto PositionsRequest, defaultEntity string) []models.PositionSample {
	samples := make([]models.PositionSample, len(dto.Positions))
	for i, p := range dto.Positions {
		entity := p.EntityID
		if entity == "" {
			entity = defaultEntity
		}
		samples[i] = models.PositionSample{
			EntityID:   entity,
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			SpeedKmh:   p.SpeedKmh,
			RecordedAt: p.RecordedAt,
		}
	}
	return samples
}

func DTOToPolicyModel(dto PolicyRequest) *models.Policy {
	policy := &models.Policy{
		WorkHoursStart:    dto.WorkHoursStart,
		WorkHoursEnd:      dto.WorkHoursEnd,
		WorkDays:          dto.WorkDays,
		Timezone:          dto.Timezone,
		AutoApproveKm:     dto.AutoApproveKm,
		PurposeRequiredKm: dto.PurposeRequiredKm,
	}
	for _, o := range dto.Offices {
		policy.Offices = append(policy.Offices, models.Office{
			Name:         o.Name,
			Latitude:     o.Latitude,
			Longitude:    o.Longitude,
			RadiusMeters: o.RadiusMeters,
		})
	}
	return policy
}
