package publisher

import (
	"github.com/google/uuid"
	"github.com/shenikar/drive_journal/internal/models"
)

type alertMessage struct {
	ID           uuid.UUID     `json:"id"`
	EntityID     string        `json:"entity_id"`
	Event        string        `json:"event"`
	GeofenceID   uuid.UUID     `json:"geofence_id"`
	GeofenceName string        `json:"geofence_name"`
	AutoCategory string        `json:"auto_category,omitempty"`
	Location     alertLocation `json:"location"`
	Timestamp    int64         `json:"timestamp"`
}

type alertLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func newAlertMessage(event models.GeofenceEvent) alertMessage {
	return alertMessage{
		ID:           event.ID,
		EntityID:     event.EntityID,
		Event:        event.Type,
		GeofenceID:   event.GeofenceID,
		GeofenceName: event.GeofenceName,
		AutoCategory: event.AutoCategory,
		Location: alertLocation{
			Latitude:  event.Latitude,
			Longitude: event.Longitude,
		},
		Timestamp: event.OccurredAt.Unix(),
	}
}
