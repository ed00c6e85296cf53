package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drive_journal/internal/classifier"
	"github.com/shenikar/drive_journal/internal/config"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

type tripMocks struct {
	repo      *mocks.MockTripRepository
	positions *mocks.MockPositionRepository
	geofences *mocks.MockGeofenceRepository
	policies  *mocks.MockPolicyService
}

// newTestTripService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestTripService(t *testing.T) (*tripService, tripMocks) {
	ctrl := gomock.NewController(t)
	m := tripMocks{
		repo:      mocks.NewMockTripRepository(ctrl),
		positions: mocks.NewMockPositionRepository(ctrl),
		geofences: mocks.NewMockGeofenceRepository(ctrl),
		policies:  mocks.NewMockPolicyService(ctrl),
	}

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
		ClassifyBatchSize:      500,
	}

	service := NewTripService(m.repo, m.positions, m.geofences, m.policies, nil, testLogger(), cfg)
	s := service.(*tripService)
	s.now = func() time.Time { return testNow }
	return s, m
}

func testPolicy() *models.Policy {
	return &models.Policy{
		WorkHoursStart:    strPtr("08:00"),
		WorkHoursEnd:      strPtr("17:00"),
		WorkDays:          []int{1, 2, 3, 4, 5},
		Offices:           []models.Office{{Name: "HQ", Latitude: 59.33, Longitude: 18.06}},
		AutoApproveKm:     floatPtr(20),
		PurposeRequiredKm: floatPtr(50),
	}
}

func testTrip(startedAt time.Time, km float64) *models.Trip {
	startLat, startLon := 59.33, 18.06
	endLat, endLon := 59.40, 18.20
	return &models.Trip{
		ID:              uuid.New(),
		DriverID:        "driver-1",
		StartedAt:       startedAt,
		EndedAt:         startedAt.Add(30 * time.Minute),
		Start:           models.TripPoint{Latitude: &startLat, Longitude: &startLon},
		End:             models.TripPoint{Latitude: &endLat, Longitude: &endLon},
		DistanceKm:      km,
		DurationMinutes: 30,
		Category:        models.CategoryUnclassified,
		Status:          models.StatusPending,
	}
}

func expectRules(ctx context.Context, m tripMocks) {
	m.policies.EXPECT().GetPolicy(ctx).Return(testPolicy(), nil).Times(1)
	m.geofences.EXPECT().ListActive(ctx).Return(nil, nil).Times(1)
}

func TestCreateTrip_Success(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	started := time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)
	trip := &models.Trip{
		DriverID:  "driver-1",
		StartedAt: started,
		EndedAt:   started.Add(45 * time.Minute),
		Category:  models.CategoryBusiness,
		IsFlagged: true,
	}

	// Ожидания
	m.repo.EXPECT().Create(ctx, trip).Return(nil).Times(1)

	// Действие
	err := service.CreateTrip(ctx, trip)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.CategoryUnclassified, trip.Category)
	assert.Equal(t, models.StatusPending, trip.Status)
	assert.False(t, trip.IsFlagged)
	assert.Equal(t, 45.0, trip.DurationMinutes)
}

func TestGetTrip_NotFound(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound).Times(1)

	// Действие
	trip, err := service.GetTrip(ctx, id)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateTrip_Reclassifies(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	existing := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)
	update := *existing
	update.DistanceKm = 80
	update.Purpose = ""

	// Ожидания
	gomock.InOrder(
		m.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1),
		m.policies.EXPECT().GetPolicy(ctx).Return(testPolicy(), nil).Times(1),
		m.geofences.EXPECT().ListActive(ctx).Return(nil, nil).Times(1),
		m.repo.EXPECT().Update(ctx, existing).Return(nil).Times(1),
		m.repo.EXPECT().SaveClassification(ctx, existing).Return(nil).Times(1),
	)

	// Действие
	err := service.UpdateTrip(ctx, &update)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 80.0, update.DistanceKm)
	assert.Equal(t, models.CategoryBusiness, update.Category)
	assert.True(t, update.IsFlagged)
	assert.Equal(t, models.StatusPending, update.Status)
}

func TestUpdateTrip_RulesUnavailableLeavesTripUntouched(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	existing := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)
	update := *existing
	update.DistanceKm = 80

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	m.policies.EXPECT().GetPolicy(ctx).Return(nil, errors.New("db down")).Times(1)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
	m.repo.EXPECT().SaveClassification(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.UpdateTrip(ctx, &update)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestUpdateTrip_GeofencesUnavailableLeavesTripUntouched(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	existing := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)
	update := *existing

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	m.policies.EXPECT().GetPolicy(ctx).Return(testPolicy(), nil).Times(1)
	m.geofences.EXPECT().ListActive(ctx).Return(nil, errors.New("timeout")).Times(1)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.UpdateTrip(ctx, &update)

	// Проверки
	require.Error(t, err)
}

func TestUpdateTrip_RevokesSystemApprovalWhenFlagged(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	approvedAt := testNow.Add(-time.Hour)
	existing := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)
	existing.Category = models.CategoryBusiness
	existing.Status = models.StatusApproved
	existing.ReviewedBy = classifier.SystemReviewer
	existing.ReviewedAt = &approvedAt
	update := *existing
	update.DistanceKm = 700
	update.DurationMinutes = 600

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	expectRules(ctx, m)
	m.repo.EXPECT().Update(ctx, existing).Return(nil).Times(1)
	m.repo.EXPECT().SaveClassification(ctx, existing).Return(nil).Times(1)

	// Действие
	err := service.UpdateTrip(ctx, &update)

	// Проверки
	require.NoError(t, err)
	assert.True(t, update.IsFlagged)
	assert.Contains(t, update.FlagReason, "unusually long trip (>500km)")
	assert.Equal(t, models.StatusPending, update.Status)
	assert.Empty(t, update.ReviewedBy)
	assert.Nil(t, update.ReviewedAt)
}

func TestUpdateTrip_KeepsManualApproval(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	approvedAt := testNow.Add(-time.Hour)
	existing := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)
	existing.Category = models.CategoryBusiness
	existing.Status = models.StatusApproved
	existing.ReviewedBy = "manager-7"
	existing.ReviewedAt = &approvedAt
	update := *existing
	update.DistanceKm = 700

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil).Times(1)
	expectRules(ctx, m)
	m.repo.EXPECT().Update(ctx, existing).Return(nil).Times(1)
	m.repo.EXPECT().SaveClassification(ctx, existing).Return(nil).Times(1)

	// Действие
	err := service.UpdateTrip(ctx, &update)

	// Проверки
	require.NoError(t, err)
	assert.True(t, update.IsFlagged)
	assert.Equal(t, models.StatusApproved, update.Status)
	assert.Equal(t, "manager-7", update.ReviewedBy)
	assert.Equal(t, &approvedAt, update.ReviewedAt)
}

func TestReviewTrip_Success(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	trip := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 120)

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, trip.ID).Return(trip, nil).Times(1)
	m.repo.EXPECT().SaveReview(ctx, trip).Return(nil).Times(1)
	m.repo.EXPECT().SaveClassification(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	reviewed, err := service.ReviewTrip(ctx, trip.ID, models.StatusRejected, "manager-7")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, reviewed.Status)
	assert.Equal(t, "manager-7", reviewed.ReviewedBy)
	require.NotNil(t, reviewed.ReviewedAt)
	assert.Equal(t, testNow, *reviewed.ReviewedAt)
}

func TestReviewTrip_InvalidStatus(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	trip, err := service.ReviewTrip(ctx, uuid.New(), models.StatusPending, "manager-7")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, trip)
}

func TestClassifyTrip_BusinessAutoApproved(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	trip := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, trip.ID).Return(trip, nil).Times(1)
	expectRules(ctx, m)
	m.repo.EXPECT().SaveClassification(ctx, trip).Return(nil).Times(1)

	// Действие
	classified, err := service.ClassifyTrip(ctx, trip.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.CategoryBusiness, classified.Category)
	assert.Equal(t, models.StatusApproved, classified.Status)
	assert.Equal(t, classifier.SystemReviewer, classified.ReviewedBy)
}

func TestClassifyPending_IsolatesRecordFailures(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	business := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)
	broken := testTrip(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), 15)
	private := testTrip(time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC), 600)

	// Ожидания
	expectRules(ctx, m)
	m.repo.EXPECT().
		ListUnevaluated(ctx, 500).
		Return([]*models.Trip{business, broken, private}, nil).
		Times(1)
	m.repo.EXPECT().
		SaveClassification(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) error {
			if trip.ID == broken.ID {
				return errors.New("deadlock detected")
			}
			return nil
		}).
		Times(3)
	m.repo.EXPECT().MarkEvaluated(ctx, broken.ID).Return(nil).Times(1)

	// Действие
	report, err := service.ClassifyPending(ctx, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Approved)
	assert.Equal(t, 1, report.Flagged)
	require.Len(t, report.Results, 3)
	assert.Empty(t, report.Results[0].Error)
	assert.Equal(t, broken.ID, report.Results[1].TripID)
	assert.Contains(t, report.Results[1].Error, "deadlock detected")
	assert.Equal(t, models.CategoryPrivate, report.Results[2].Category)
	assert.True(t, report.Results[2].Flagged)
	assert.Equal(t, "missing purpose for trip over 50km; unusually long trip (>500km)", private.FlagReason)
}

// memTripRepository хранит поездки в памяти и повторяет выборку очереди
// классификатора: только неоцененные, от старых к новым, не больше limit
type memTripRepository struct {
	TripRepository
	trips      map[uuid.UUID]models.Trip
	failSave   map[uuid.UUID]bool
	saves      map[uuid.UUID]int
	evaluateAt time.Time
}

func newMemTripRepository(trips ...*models.Trip) *memTripRepository {
	r := &memTripRepository{
		trips:      make(map[uuid.UUID]models.Trip),
		failSave:   make(map[uuid.UUID]bool),
		saves:      make(map[uuid.UUID]int),
		evaluateAt: testNow,
	}
	for _, trip := range trips {
		r.trips[trip.ID] = *trip
	}
	return r
}

func (r *memTripRepository) ListUnevaluated(_ context.Context, limit int) ([]*models.Trip, error) {
	queue := make([]*models.Trip, 0)
	for _, trip := range r.trips {
		if trip.EvaluatedAt == nil {
			trip := trip
			queue = append(queue, &trip)
		}
	}
	sort.Slice(queue, func(i, j int) bool { return queue[i].StartedAt.Before(queue[j].StartedAt) })
	if len(queue) > limit {
		queue = queue[:limit]
	}
	return queue, nil
}

func (r *memTripRepository) SaveClassification(_ context.Context, trip *models.Trip) error {
	r.saves[trip.ID]++
	if r.failSave[trip.ID] {
		return errors.New("deadlock detected")
	}
	evaluatedAt := r.evaluateAt
	trip.EvaluatedAt = &evaluatedAt
	r.trips[trip.ID] = *trip
	return nil
}

func (r *memTripRepository) MarkEvaluated(_ context.Context, id uuid.UUID) error {
	trip, ok := r.trips[id]
	if !ok {
		return models.ErrNotFound
	}
	evaluatedAt := r.evaluateAt
	trip.EvaluatedAt = &evaluatedAt
	r.trips[id] = trip
	return nil
}

func newMemTripService(t *testing.T, repo TripRepository, runs int) *tripService {
	ctrl := gomock.NewController(t)
	policies := mocks.NewMockPolicyService(ctrl)
	geofences := mocks.NewMockGeofenceRepository(ctrl)
	policies.EXPECT().GetPolicy(gomock.Any()).Return(testPolicy(), nil).Times(runs)
	geofences.EXPECT().ListActive(gomock.Any()).Return(nil, nil).Times(runs)

	cfg := &config.Config{ClassifyBatchSize: 2}
	service := NewTripService(repo, mocks.NewMockPositionRepository(ctrl), geofences, policies, nil, testLogger(), cfg)
	s := service.(*tripService)
	s.now = func() time.Time { return testNow }
	return s
}

// ambiguousTrip - поездка в рабочее время вдали от офисов, правила оставляют ее unclassified
func ambiguousTrip(startedAt time.Time) *models.Trip {
	trip := testTrip(startedAt, 15)
	startLat, startLon := 59.40, 18.20
	endLat, endLon := 59.45, 18.30
	trip.Start = models.TripPoint{Latitude: &startLat, Longitude: &startLon}
	trip.End = models.TripPoint{Latitude: &endLat, Longitude: &endLon}
	return trip
}

func TestClassifyPending_AmbiguousTripsDoNotBlockQueue(t *testing.T) {
	// Подготовка
	ctx := context.Background()
	first := ambiguousTrip(time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC))
	second := ambiguousTrip(time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC))
	business := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)
	repo := newMemTripRepository(first, second, business)

	// Ожидания
	service := newMemTripService(t, repo, 3)

	// Действие
	reports := make([]*models.BatchReport, 0, 3)
	for i := 0; i < 3; i++ {
		report, err := service.ClassifyPending(ctx, 0)
		require.NoError(t, err)
		reports = append(reports, report)
	}

	// Проверки
	assert.Equal(t, 2, reports[0].Processed)
	assert.Equal(t, 0, reports[0].Classified)
	assert.Equal(t, 1, reports[1].Processed)
	assert.Equal(t, 1, reports[1].Classified)
	assert.Equal(t, 1, reports[1].Approved)
	assert.Equal(t, 0, reports[2].Processed)

	stored := repo.trips[business.ID]
	assert.Equal(t, models.CategoryBusiness, stored.Category)
	assert.Equal(t, models.StatusApproved, stored.Status)
	assert.Equal(t, models.CategoryUnclassified, repo.trips[first.ID].Category)
	assert.Equal(t, models.CategoryUnclassified, repo.trips[second.ID].Category)
	assert.Equal(t, 1, repo.saves[first.ID])
	assert.Equal(t, 1, repo.saves[second.ID])
	assert.Equal(t, 1, repo.saves[business.ID])
}

func TestClassifyPending_FailedTripLeavesQueue(t *testing.T) {
	// Подготовка
	ctx := context.Background()
	broken := testTrip(time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC), 15)
	business := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)
	repo := newMemTripRepository(broken, business)
	repo.failSave[broken.ID] = true

	// Ожидания
	service := newMemTripService(t, repo, 2)

	// Действие
	first, err := service.ClassifyPending(ctx, 1)
	require.NoError(t, err)
	second, err := service.ClassifyPending(ctx, 1)
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, 1, first.Failed)
	assert.Equal(t, broken.ID, first.Results[0].TripID)
	require.Len(t, second.Results, 1)
	assert.Equal(t, business.ID, second.Results[0].TripID)
	assert.Equal(t, 0, second.Failed)
	assert.Equal(t, 1, repo.saves[broken.ID])
	assert.NotNil(t, repo.trips[broken.ID].EvaluatedAt)
	assert.Equal(t, models.CategoryBusiness, repo.trips[business.ID].Category)
}

func TestClassifyPending_MarkFailureDoesNotAbortBatch(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	broken := testTrip(time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC), 15)
	business := testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 15)

	// Ожидания
	expectRules(ctx, m)
	m.repo.EXPECT().ListUnevaluated(ctx, 5).Return([]*models.Trip{broken, business}, nil).Times(1)
	m.repo.EXPECT().SaveClassification(ctx, broken).Return(errors.New("deadlock detected")).Times(1)
	m.repo.EXPECT().MarkEvaluated(ctx, broken.ID).Return(errors.New("conn reset")).Times(1)
	m.repo.EXPECT().SaveClassification(ctx, business).Return(nil).Times(1)

	// Действие
	report, err := service.ClassifyPending(ctx, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Classified)
}

func TestClassifyPending_PolicyUnavailable(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()

	// Ожидания
	m.policies.EXPECT().GetPolicy(ctx).Return(nil, errors.New("db down")).Times(1)
	m.repo.EXPECT().ListUnevaluated(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	report, err := service.ClassifyPending(ctx, 10)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestClassifyPending_ListError(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()

	// Ожидания
	expectRules(ctx, m)
	m.repo.EXPECT().ListUnevaluated(ctx, 10).Return(nil, errors.New("timeout")).Times(1)

	// Действие
	report, err := service.ClassifyPending(ctx, 10)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	stats := &models.TripStats{
		ByCategory: map[string]int{models.CategoryBusiness: 4},
		ByStatus:   map[string]int{models.StatusPending: 4},
		Flagged:    1,
	}

	// Ожидания
	m.repo.EXPECT().CountStats(ctx).Return(stats, nil).Times(1)
	m.positions.EXPECT().CountActiveEntities(ctx, 60).Return(7, nil).Times(1)

	// Действие
	result, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 7, result.ActiveEntities)
	assert.Equal(t, 1, result.Flagged)
}

func TestExportCSV_WritesAllPages(t *testing.T) {
	// Подготовка
	service, m := newTestTripService(t)
	ctx := context.Background()
	firstPage := make([]*models.Trip, exportPageSize)
	for i := range firstPage {
		firstPage[i] = testTrip(time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), 10)
	}
	lastPage := []*models.Trip{testTrip(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), 12.5)}
	var buf bytes.Buffer

	// Ожидания
	gomock.InOrder(
		m.repo.EXPECT().
			List(ctx, models.TripFilter{DriverID: "driver-1", Page: 1, PageSize: exportPageSize}).
			Return(firstPage, nil).
			Times(1),
		m.repo.EXPECT().
			List(ctx, models.TripFilter{DriverID: "driver-1", Page: 2, PageSize: exportPageSize}).
			Return(lastPage, nil).
			Times(1),
	)

	// Действие
	err := service.ExportCSV(ctx, models.TripFilter{DriverID: "driver-1"}, &buf)

	// Проверки
	require.NoError(t, err)
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, exportPageSize+2)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "12.50", records[len(records)-1][7])
}
