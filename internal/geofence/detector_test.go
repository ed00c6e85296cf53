package geofence

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)

func depot() models.Geofence {
	return models.Geofence{
		ID:           uuid.MustParse("7b4c2d8e-6a51-4f3b-9c0e-1d2f3a4b5c6d"),
		Name:         "Depot",
		Latitude:     -6.2088,
		Longitude:    106.8456,
		RadiusMeters: 50,
		IsActive:     true,
		AutoCategory: models.CategoryBusiness,
	}
}

func sample(entity string, lat, lon float64, offset time.Duration) models.PositionSample {
	return models.PositionSample{EntityID: entity, Latitude: lat, Longitude: lon, RecordedAt: base.Add(offset)}
}

func inside(entity string, offset time.Duration) models.PositionSample {
	return sample(entity, -6.2088, 106.8456, offset)
}

func outside(entity string, offset time.Duration) models.PositionSample {
	return sample(entity, -7.0, 107.0, offset)
}

func TestDetect_FirstObservationEmitsNothing(t *testing.T) {
	fence := depot()

	events, next := Detect(State{}, []models.PositionSample{inside("B1234XYZ", 0)}, []models.Geofence{fence})

	assert.Empty(t, events)
	assert.Equal(t, State{{EntityID: "B1234XYZ", GeofenceID: fence.ID}: true}, next)
}

func TestDetect_EnterAndExit(t *testing.T) {
	fence := depot()
	samples := []models.PositionSample{
		outside("B1234XYZ", 0),
		outside("B1234XYZ", time.Minute),
		inside("B1234XYZ", 2*time.Minute),
		inside("B1234XYZ", 3*time.Minute),
		outside("B1234XYZ", 4*time.Minute),
	}

	events, next := Detect(nil, samples, []models.Geofence{fence})

	require.Len(t, events, 2)
	assert.Equal(t, models.GeofenceEntered, events[0].Type)
	assert.Equal(t, base.Add(2*time.Minute), events[0].OccurredAt)
	assert.Equal(t, "B1234XYZ", events[0].EntityID)
	assert.Equal(t, fence.ID, events[0].GeofenceID)
	assert.Equal(t, models.CategoryBusiness, events[0].AutoCategory)
	assert.Equal(t, models.GeofenceExited, events[1].Type)
	assert.Equal(t, base.Add(4*time.Minute), events[1].OccurredAt)
	assert.False(t, next[StateKey{EntityID: "B1234XYZ", GeofenceID: fence.ID}])
}

func TestDetect_UsesPreviousState(t *testing.T) {
	fence := depot()
	key := StateKey{EntityID: "B1234XYZ", GeofenceID: fence.ID}
	prev := State{key: false}

	events, next := Detect(prev, []models.PositionSample{inside("B1234XYZ", 0)}, []models.Geofence{fence})

	require.Len(t, events, 1)
	assert.Equal(t, models.GeofenceEntered, events[0].Type)
	assert.True(t, next[key])
	assert.False(t, prev[key], "previous state must not be mutated")
}

func TestDetect_RepeatedSameStateEmitsNothing(t *testing.T) {
	fence := depot()
	key := StateKey{EntityID: "B1234XYZ", GeofenceID: fence.ID}

	events, _ := Detect(State{key: true}, []models.PositionSample{
		inside("B1234XYZ", 0),
		inside("B1234XYZ", time.Minute),
	}, []models.Geofence{fence})

	assert.Empty(t, events)
}

func TestDetect_SortsSamplesByTime(t *testing.T) {
	fence := depot()
	key := StateKey{EntityID: "B1234XYZ", GeofenceID: fence.ID}

	events, next := Detect(State{key: false}, []models.PositionSample{
		outside("B1234XYZ", 2*time.Minute),
		inside("B1234XYZ", time.Minute),
	}, []models.Geofence{fence})

	require.Len(t, events, 2)
	assert.Equal(t, models.GeofenceEntered, events[0].Type)
	assert.Equal(t, models.GeofenceExited, events[1].Type)
	assert.False(t, next[key])
}

func TestDetect_PairsAreIndependent(t *testing.T) {
	depotFence := depot()
	office := models.Geofence{
		ID:           uuid.New(),
		Name:         "Office",
		Latitude:     -7.0,
		Longitude:    107.0,
		RadiusMeters: 100,
		IsActive:     true,
	}
	fences := []models.Geofence{depotFence, office}
	prev := State{
		{EntityID: "truck-1", GeofenceID: depotFence.ID}: false,
		{EntityID: "truck-1", GeofenceID: office.ID}:     true,
	}

	events, next := Detect(prev, []models.PositionSample{
		inside("truck-1", 0),
		inside("truck-2", 0),
	}, fences)

	require.Len(t, events, 2)
	byFence := map[uuid.UUID]string{}
	for _, e := range events {
		assert.Equal(t, "truck-1", e.EntityID)
		byFence[e.GeofenceID] = e.Type
	}
	assert.Equal(t, models.GeofenceEntered, byFence[depotFence.ID])
	assert.Equal(t, models.GeofenceExited, byFence[office.ID])

	assert.True(t, next[StateKey{EntityID: "truck-2", GeofenceID: depotFence.ID}])
	assert.False(t, next[StateKey{EntityID: "truck-2", GeofenceID: office.ID}])
}

func TestDetect_InactiveFenceIgnored(t *testing.T) {
	fence := depot()
	fence.IsActive = false
	key := StateKey{EntityID: "B1234XYZ", GeofenceID: fence.ID}

	events, next := Detect(State{key: false}, []models.PositionSample{inside("B1234XYZ", 0)}, []models.Geofence{fence})

	assert.Empty(t, events)
	assert.False(t, next[key])
}

func TestDetect_NaNCoordinatesCountAsOutside(t *testing.T) {
	fence := depot()
	key := StateKey{EntityID: "B1234XYZ", GeofenceID: fence.ID}

	events, next := Detect(State{key: true}, []models.PositionSample{
		sample("B1234XYZ", math.NaN(), 106.8456, 0),
	}, []models.Geofence{fence})

	require.Len(t, events, 1)
	assert.Equal(t, models.GeofenceExited, events[0].Type)
	assert.False(t, next[key])
}

func TestKeys(t *testing.T) {
	active := depot()
	inactive := depot()
	inactive.ID = uuid.New()
	inactive.IsActive = false

	keys := Keys([]models.PositionSample{
		inside("a", 0),
		inside("a", time.Minute),
		inside("b", 0),
	}, []models.Geofence{active, inactive})

	assert.Equal(t, []StateKey{
		{EntityID: "a", GeofenceID: active.ID},
		{EntityID: "b", GeofenceID: active.ID},
	}, keys)
}
