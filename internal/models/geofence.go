package models

import (
	"time"

	"github.com/google/uuid"
)

type Geofence struct {
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

// Типы событий геозоны
const (
	GeofenceEntered = "entered"
	GeofenceExited  = "exited"
)

// GeofenceEvent - переход отслеживаемого объекта через границу геозоны
type GeofenceEvent struct {
	ID           uuid.UUID `json:"id"`
	EntityID     string    `json:"entity_id"`
	GeofenceID   uuid.UUID `json:"geofence_id"`
	GeofenceName string    `json:"geofence_name"`
	Type         string    `json:"type"`
	AutoCategory string    `json:"auto_category,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	OccurredAt   time.Time `json:"occurred_at"`
}
