package v1

import (
	"time"

	"github.com/google/uuid"
)

// TripPointDTO точка начала или конца поездки
// @Description Точка поездки. Координаты необязательны
type TripPointDTO struct {
	Address   string   `json:"address,omitempty" validate:"max=500"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// TripRequest DTO для создания и обновления поездки
// @Description DTO для создания и обновления поездки
type TripRequest struct {
	DriverID        string       `json:"driver_id,omitempty" validate:"max=255"`
	VehicleID       string       `json:"vehicle_id,omitempty" validate:"max=255"`
	StartedAt       time.Time    `json:"started_at" validate:"required"`
	EndedAt         time.Time    `json:"ended_at" validate:"required,gtefield=StartedAt"`
	Start           TripPointDTO `json:"start"`
	End             TripPointDTO `json:"end"`
	DistanceKm      float64      `json:"distance_km" validate:"gte=0"`
	DurationMinutes float64      `json:"duration_minutes" validate:"gte=0"`
	Purpose         string       `json:"purpose,omitempty" validate:"max=1000"`
}

// ReviewTripRequest DTO для ручного согласования поездки
// @Description DTO для ручного согласования поездки
type ReviewTripRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	ReviewedBy string `json:"reviewed_by" validate:"required,max=255"`
}

// ClassifyRequest DTO для запуска пакетной классификации
// @Description DTO для запуска пакетной классификации
type ClassifyRequest struct {
	Limit int `json:"limit" validate:"gte=0,lte=5000"`
}

// TripResponse DTO для ответа с информацией о поездке
// @Description DTO для ответа с информацией о поездке
type TripResponse struct {
	ID              uuid.UUID    `json:"id"`
	DriverID        string       `json:"driver_id"`
	VehicleID       string       `json:"vehicle_id,omitempty"`
	StartedAt       time.Time    `json:"started_at"`
	EndedAt         time.Time    `json:"ended_at"`
	Start           TripPointDTO `json:"start"`
	End             TripPointDTO `json:"end"`
	DistanceKm      float64      `json:"distance_km"`
	DurationMinutes float64      `json:"duration_minutes"`
	Purpose         string       `json:"purpose,omitempty"`
	Category        string       `json:"category"`
	IsFlagged       bool         `json:"is_flagged"`
	FlagReason      string       `json:"flag_reason,omitempty"`
	Status          string       `json:"status"`
	ReviewedBy      string       `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time   `json:"reviewed_at,omitempty"`
	EvaluatedAt     *time.Time   `json:"evaluated_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// GeofenceRequest DTO для создания и обновления геозоны
// @Description DTO для создания и обновления геозоны
type GeofenceRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
	AutoCategory string  `json:"auto_category,omitempty" validate:"omitempty,oneof=business private"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// GeofenceResponse DTO для ответа с информацией о геозоне
// @Description DTO для ответа с информацией о геозоне
type GeofenceResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	IsActive     bool      `json:"is_active"`
	AutoCategory string    `json:"auto_category,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	EntityID  string  `json:"entity_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// PositionDTO отметка GPS
// @Description Отметка GPS. entity_id берется из токена водителя, если не задан
type PositionDTO struct {
	EntityID   string    `json:"entity_id,omitempty" validate:"max=255"`
	Latitude   float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64   `json:"longitude" validate:"min=-180,max=180"`
	SpeedKmh   float64   `json:"speed_kmh" validate:"gte=0"`
	RecordedAt time.Time `json:"recorded_at" validate:"required"`
}

// PositionsRequest DTO для загрузки пачки отметок
// @Description DTO для загрузки пачки отметок
type PositionsRequest struct {
	Positions []PositionDTO `json:"positions" validate:"required,min=1,max=1000,dive"`
}

// OfficeDTO офис компании
// @Description Офис компании
type OfficeDTO struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Latitude     float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64  `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters *float64 `json:"radius_meters,omitempty" validate:"omitempty,gt=0"`
}

// PolicyRequest DTO для изменения политики классификации
// @Description Незаданное поле снимает соответствующее ограничение
type PolicyRequest struct {
	WorkHoursStart    *string     `json:"work_hours_start,omitempty" validate:"omitempty,datetime=15:04"`
	WorkHoursEnd      *string     `json:"work_hours_end,omitempty" validate:"omitempty,datetime=15:04"`
	WorkDays          []int       `json:"work_days,omitempty" validate:"omitempty,max=7,dive,min=0,max=6"`
	Timezone          *string     `json:"timezone,omitempty" validate:"omitempty,timezone"`
	Offices           []OfficeDTO `json:"offices,omitempty" validate:"omitempty,dive"`
	AutoApproveKm     *float64    `json:"auto_approve_km,omitempty" validate:"omitempty,gte=0"`
	PurposeRequiredKm *float64    `json:"purpose_required_km,omitempty" validate:"omitempty,gte=0"`
}
