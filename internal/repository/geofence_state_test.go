package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/drive_journal/internal/geofence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeofenceStateKey_PerFence(t *testing.T) {
	id := uuid.MustParse("6f1c0b52-3a0e-4d0c-9a4e-0c7d3b1f2a10")

	assert.Equal(t, "drive_journal:geofence_state:6f1c0b52-3a0e-4d0c-9a4e-0c7d3b1f2a10", geofenceStateKey(id))
}

func TestKeysByFence_GroupsInFirstSeenOrder(t *testing.T) {
	depot, office := uuid.New(), uuid.New()
	keys := []geofence.StateKey{
		{EntityID: "v1", GeofenceID: office},
		{EntityID: "v1", GeofenceID: depot},
		{EntityID: "v2", GeofenceID: office},
	}

	order, groups := keysByFence(keys)

	require.Equal(t, []uuid.UUID{office, depot}, order)
	assert.Equal(t, []geofence.StateKey{keys[0], keys[2]}, groups[office])
	assert.Equal(t, []geofence.StateKey{keys[1]}, groups[depot])
}

func TestKeysByFence_Empty(t *testing.T) {
	order, groups := keysByFence(nil)

	assert.Empty(t, order)
	assert.Empty(t, groups)
}
