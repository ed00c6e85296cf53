package models

import (
	"time"

	"github.com/google/uuid"
)

// Категории поездки
const (
	CategoryUnclassified = "unclassified"
	CategoryBusiness     = "business"
	CategoryPrivate      = "private"
)

// Статусы согласования поездки
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// TripPoint - начальная или конечная точка поездки. Координаты могут отсутствовать
type TripPoint struct {
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates сообщает, заданы ли обе координаты точки
func (p TripPoint) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Trip - запись журнала поездок
type Trip struct {
	ID              uuid.UUID  `json:"id"`
	DriverID        string     `json:"driver_id"`
	VehicleID       string     `json:"vehicle_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         time.Time  `json:"ended_at"`
	Start           TripPoint  `json:"start"`
	End             TripPoint  `json:"end"`
	DistanceKm      float64    `json:"distance_km"`
	DurationMinutes float64    `json:"duration_minutes"`
	Purpose         string     `json:"purpose"`
	Category        string     `json:"category"`
	IsFlagged       bool       `json:"is_flagged"`
	FlagReason      string     `json:"flag_reason"`
	Status          string     `json:"status"`
	ReviewedBy      string     `json:"reviewed_by"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	EvaluatedAt     *time.Time `json:"evaluated_at,omitempty"` // nil - поездка в очереди классификатора
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TripFilter - параметры выборки поездок
type TripFilter struct {
	DriverID string
	Category string
	Status   string
	Flagged  *bool
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// TripStats - агрегаты по журналу поездок
type TripStats struct {
	ByCategory     map[string]int `json:"by_category"`
	ByStatus       map[string]int `json:"by_status"`
	Flagged        int            `json:"flagged"`
	ActiveEntities int            `json:"active_entities"`
}
