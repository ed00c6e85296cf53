package models

import (
	"time"

	"github.com/google/uuid"
)

// RecordResult - итог обработки одной поездки в пакете
type RecordResult struct {
	TripID   uuid.UUID `json:"trip_id"`
	Category string    `json:"category,omitempty"`
	Flagged  bool      `json:"flagged"`
	Approved bool      `json:"approved"`
	Error    string    `json:"error,omitempty"`
}

// BatchReport - итог пакетного прогона классификатора.
// Ошибки отдельных записей не прерывают пакет
type BatchReport struct {
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Processed  int            `json:"processed"`
	Classified int            `json:"classified"`
	Flagged    int            `json:"flagged"`
	Approved   int            `json:"approved"`
	Failed     int            `json:"failed"`
	Results    []RecordResult `json:"results"`
}

// PositionReport - итог обработки пачки отметок
type PositionReport struct {
	Received      int             `json:"received"`
	Stored        int             `json:"stored"`
	Skipped       int             `json:"skipped"`
	Events        []GeofenceEvent `json:"events"`
	PublishErrors []string        `json:"publish_errors,omitempty"`
}
