package geofence

//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/drive_journal/internal/geo"
	"github.com/shenikar/drive_journal/internal/models"
)

// StateKey идентифицирует пару "объект - геозона"
type StateKey struct {
	EntityID   string
	GeofenceID uuid.UUID
}

func (k StateKey) String() string {
	return k.EntityID + "|" + k.GeofenceID.String()
}

// State хранит последнее известное положение объекта относительно геозоны: true - внутри
type State map[StateKey]bool

// Clone возвращает независимую копию состояния
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// StateStore сохраняет состояние между независимыми запусками обработки
type StateStore interface {
	Load(ctx context.Context, keys []StateKey) (State, error)
	Save(ctx context.Context, state State) error
	// Forget удаляет состояние всех объектов для геозоны, например после ее отключения
	Forget(ctx context.Context, geofenceID uuid.UUID) error
}

// Keys перечисляет все пары, которые затронет обработка отметок
func Keys(samples []models.PositionSample, fences []models.Geofence) []StateKey {
	seen := make(map[string]bool)
	var keys []StateKey
	for _, s := range samples {
		if seen[s.EntityID] {
			continue
		}
		seen[s.EntityID] = true
		for _, f := range fences {
			if f.IsActive {
				keys = append(keys, StateKey{EntityID: s.EntityID, GeofenceID: f.ID})
			}
		}
	}
	return keys
}

// Detect сравнивает каждую отметку с предыдущим состоянием пары и возвращает события
// входа и выхода вместе с новым состоянием. prev не изменяется.
// Первое наблюдение пары только инициализирует состояние
func Detect(prev State, samples []models.PositionSample, fences []models.Geofence) ([]models.GeofenceEvent, State) {
	next := prev.Clone()

	ordered := make([]models.PositionSample, len(samples))
	copy(ordered, samples)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RecordedAt.Before(ordered[j].RecordedAt)
	})

	var events []models.GeofenceEvent
	for _, s := range ordered {
		p := geo.Point{Lat: s.Latitude, Lon: s.Longitude}
		for _, f := range fences {
			if !f.IsActive {
				continue
			}
			key := StateKey{EntityID: s.EntityID, GeofenceID: f.ID}
			inside := geo.Within(p, geo.Circle{
				Center:       geo.Point{Lat: f.Latitude, Lon: f.Longitude},
				RadiusMeters: f.RadiusMeters,
			})

			was, known := next[key]
			next[key] = inside
			if !known || was == inside {
				continue
			}

			eventType := models.GeofenceExited
			if inside {
				eventType = models.GeofenceEntered
			}
			events = append(events, models.GeofenceEvent{
				ID:           uuid.New(),
				EntityID:     s.EntityID,
				GeofenceID:   f.ID,
				GeofenceName: f.Name,
				Type:         eventType,
				AutoCategory: f.AutoCategory,
				Latitude:     s.Latitude,
				Longitude:    s.Longitude,
				OccurredAt:   s.RecordedAt,
			})
		}
	}
	return events, next
}
