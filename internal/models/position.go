package models

import (
	"time"
)

// PositionSample представляет отметку GPS от транспорта или водителя
type PositionSample struct {
	ID         int64     `json:"id"`
	EntityID   string    `json:"entity_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	SpeedKmh   float64   `json:"speed_kmh"`
	RecordedAt time.Time `json:"recorded_at"`
}
