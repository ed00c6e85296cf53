package repository

import (
	"testing"
	"time"

	"github.com/shenikar/drive_journal/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTripFilterClause_Empty(t *testing.T) {
	where, args := tripFilterClause(models.TripFilter{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestTripFilterClause_AllFields(t *testing.T) {
	flagged := true
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	where, args := tripFilterClause(models.TripFilter{
		DriverID: "driver-1",
		Category: models.CategoryBusiness,
		Status:   models.StatusPending,
		Flagged:  &flagged,
		From:     &from,
		To:       &to,
	})

	assert.Equal(t, "WHERE driver_id = $1 AND category = $2 AND status = $3 AND is_flagged = $4 AND started_at >= $5 AND started_at < $6", where)
	assert.Equal(t, []any{"driver-1", models.CategoryBusiness, models.StatusPending, true, from, to}, args)
}

func TestUnevaluatedTripsQuery_UsesEvaluationMark(t *testing.T) {
	assert.Contains(t, unevaluatedTripsQuery, "WHERE evaluated_at IS NULL")
	assert.Contains(t, unevaluatedTripsQuery, "ORDER BY started_at ASC")
	assert.NotContains(t, unevaluatedTripsQuery, "category")
}
