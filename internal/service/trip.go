package service

//go:generate mockgen -source=trip.go -destination=mocks/mock_trip.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drive_journal/internal/classifier"
	"github.com/shenikar/drive_journal/internal/config"
	"github.com/shenikar/drive_journal/internal/metrics"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
)

// TripRepository определяет контракт для работы с бд поездок
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	Update(ctx context.Context, trip *models.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error)
	ListUnevaluated(ctx context.Context, limit int) ([]*models.Trip, error)
	SaveClassification(ctx context.Context, trip *models.Trip) error
	SaveReview(ctx context.Context, trip *models.Trip) error
	MarkEvaluated(ctx context.Context, id uuid.UUID) error
	CountStats(ctx context.Context) (*models.TripStats, error)
}

// TripService определяет контракт для бизнес-логики журнала поездок
type TripService interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	ListTrips(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error)
	ReviewTrip(ctx context.Context, id uuid.UUID, status, reviewer string) (*models.Trip, error)
	ClassifyTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ClassifyPending(ctx context.Context, limit int) (*models.BatchReport, error)
	GetStats(ctx context.Context) (*models.TripStats, error)
	ExportCSV(ctx context.Context, filter models.TripFilter, w io.Writer) error
}

type tripService struct {
	repo      TripRepository
	positions PositionRepository
	geofences GeofenceRepository
	policies  PolicyService
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewTripService(
	repo TripRepository,
	positions PositionRepository,
	geofences GeofenceRepository,
	policies PolicyService,
	m *metrics.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) TripService {
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	return &tripService{
		repo:      repo,
		positions: positions,
		geofences: geofences,
		policies:  policies,
		metrics:   m,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateTrip создает запись журнала. Новая поездка не классифицирована и ждет согласования
func (s *tripService) CreateTrip(ctx context.Context, trip *models.Trip) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "trip",
		"method":    "CreateTrip",
		"driver_id": trip.DriverID,
	})
	log.Info("Attempting to create a new trip")

	trip.Category = models.CategoryUnclassified
	trip.Status = models.StatusPending
	trip.IsFlagged = false
	trip.FlagReason = ""
	if trip.DurationMinutes == 0 && trip.EndedAt.After(trip.StartedAt) {
		trip.DurationMinutes = trip.EndedAt.Sub(trip.StartedAt).Minutes()
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		log.WithError(err).Error("Failed to create trip in repository")
		return fmt.Errorf("service: could not create trip: %w", err)
	}

	log.WithField("trip_id", trip.ID).Info("Trip created successfully")
	return nil
}

// GetTrip получает поездку по ID
func (s *tripService) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "GetTrip",
		"trip_id": id,
	})

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get trip in repository")
		return nil, fmt.Errorf("service: could not get trip: %w", err)
	}
	return trip, nil
}

// UpdateTrip обновляет данные поездки и сразу переоценивает ее
func (s *tripService) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "UpdateTrip",
		"trip_id": trip.ID,
	})
	log.Info("Attempting to update trip")

	existing, err := s.repo.GetByID(ctx, trip.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent trip")
		return fmt.Errorf("service: trip with id %s not found for update: %w", trip.ID, err)
	}

	existing.DriverID = trip.DriverID
	existing.VehicleID = trip.VehicleID
	existing.StartedAt = trip.StartedAt
	existing.EndedAt = trip.EndedAt
	existing.Start = trip.Start
	existing.End = trip.End
	existing.DistanceKm = trip.DistanceKm
	existing.DurationMinutes = trip.DurationMinutes
	existing.Purpose = trip.Purpose

	// Правила загружаются до записи, иначе правка сохранится без переоценки
	rules, err := s.loadRules(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load classification rules")
		return fmt.Errorf("service: could not classify updated trip: %w", err)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update trip in repository")
		return fmt.Errorf("service: could not update trip: %w", err)
	}

	if _, err := s.evaluate(ctx, existing, rules); err != nil {
		log.WithError(err).Error("Failed to classify updated trip")
		return fmt.Errorf("service: could not classify updated trip: %w", err)
	}

	*trip = *existing
	log.Info("Trip updated successfully")
	return nil
}

// DeleteTrip удаляет поездку
func (s *tripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "DeleteTrip",
		"trip_id": id,
	})
	log.Info("Attempting to delete trip")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete trip in repository")
		return fmt.Errorf("service: could not delete trip: %w", err)
	}

	log.Info("Trip deleted successfully")
	return nil
}

// ListTrips возвращает поездки по фильтру с пагинацией
func (s *tripService) ListTrips(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "trip",
		"method":    "ListTrips",
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})

	trips, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list trips from repository")
		return nil, fmt.Errorf("service: could not list trips: %w", err)
	}

	log.WithField("count", len(trips)).Debug("Trips listed successfully")
	return trips, nil
}

// ReviewTrip фиксирует ручное решение по поездке
func (s *tripService) ReviewTrip(ctx context.Context, id uuid.UUID, status, reviewer string) (*models.Trip, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "trip",
		"method":   "ReviewTrip",
		"trip_id":  id,
		"status":   status,
		"reviewer": reviewer,
	})

	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, fmt.Errorf("service: unsupported review status %q", status)
	}

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to review a non-existent trip")
		return nil, fmt.Errorf("service: trip with id %s not found for review: %w", id, err)
	}

	reviewedAt := s.now()
	trip.Status = status
	trip.ReviewedBy = reviewer
	trip.ReviewedAt = &reviewedAt

	if err := s.repo.SaveReview(ctx, trip); err != nil {
		log.WithError(err).Error("Failed to save trip review")
		return nil, fmt.Errorf("service: could not review trip: %w", err)
	}

	log.Info("Trip reviewed successfully")
	return trip, nil
}

// ClassifyTrip переоценивает одну поездку независимо от ее текущей категории
func (s *tripService) ClassifyTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "ClassifyTrip",
		"trip_id": id,
	})

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to classify a non-existent trip")
		return nil, fmt.Errorf("service: trip with id %s not found for classification: %w", id, err)
	}

	rules, err := s.loadRules(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load classification rules")
		return nil, fmt.Errorf("service: could not classify trip: %w", err)
	}

	if _, err := s.evaluate(ctx, trip, rules); err != nil {
		log.WithError(err).Error("Failed to classify trip")
		return nil, fmt.Errorf("service: could not classify trip: %w", err)
	}

	log.WithField("category", trip.Category).Info("Trip classified")
	return trip, nil
}

// ClassifyPending оценивает пачку поездок из очереди классификатора.
// Каждая запись оценивается один раз, включая те, что остались unclassified
// или завершились ошибкой. Ошибка возвращается только если не удалось
// загрузить входные данные
func (s *tripService) ClassifyPending(ctx context.Context, limit int) (*models.BatchReport, error) {
	if limit < 1 {
		limit = s.cfg.ClassifyBatchSize
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "ClassifyPending",
		"limit":   limit,
	})

	report := &models.BatchReport{StartedAt: s.now(), Results: make([]models.RecordResult, 0)}
	defer func() {
		s.metrics.BatchDuration.Observe(time.Since(report.StartedAt).Seconds())
	}()

	rules, err := s.loadRules(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load classification rules")
		return nil, fmt.Errorf("service: could not classify pending trips: %w", err)
	}

	trips, err := s.repo.ListUnevaluated(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list unevaluated trips")
		return nil, fmt.Errorf("service: could not classify pending trips: %w", err)
	}

	for _, trip := range trips {
		report.Processed++
		result := models.RecordResult{TripID: trip.ID}

		res, err := s.evaluate(ctx, trip, rules)
		if err != nil {
			log.WithError(err).WithField("trip_id", trip.ID).Warn("Failed to classify trip, continuing")
			s.metrics.RecordErrors.WithLabelValues("classify").Inc()
			result.Error = err.Error()
			report.Failed++
			report.Results = append(report.Results, result)
			if err := s.repo.MarkEvaluated(ctx, trip.ID); err != nil {
				log.WithError(err).WithField("trip_id", trip.ID).Warn("Failed to mark trip evaluated")
			}
			continue
		}

		result.Category = res.Category
		result.Flagged = res.Flagged()
		result.Approved = res.Approved
		if res.Category != models.CategoryUnclassified {
			report.Classified++
		}
		if result.Flagged {
			report.Flagged++
		}
		if result.Approved {
			report.Approved++
		}
		report.Results = append(report.Results, result)
	}

	report.FinishedAt = s.now()
	log.WithFields(logrus.Fields{
		"processed":  report.Processed,
		"classified": report.Classified,
		"flagged":    report.Flagged,
		"approved":   report.Approved,
		"failed":     report.Failed,
	}).Info("Classification batch completed")
	return report, nil
}

// GetStats возвращает агрегаты журнала и число активных объектов за окно статистики
func (s *tripService) GetStats(ctx context.Context) (*models.TripStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "GetStats",
	})

	stats, err := s.repo.CountStats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count trip stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	active, err := s.positions.CountActiveEntities(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to count active entities")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	stats.ActiveEntities = active
	return stats, nil
}

func (s *tripService) loadRules(ctx context.Context) (classifier.Rules, error) {
	policy, err := s.policies.GetPolicy(ctx)
	if err != nil {
		return classifier.Rules{}, err
	}
	fences, err := s.geofences.ListActive(ctx)
	if err != nil {
		return classifier.Rules{}, fmt.Errorf("could not load geofences: %w", err)
	}
	return classifier.Resolve(policy, fences), nil
}

// evaluate классифицирует поездку и сохраняет результат. Паника при оценке
// превращается в ошибку этой записи
func (s *tripService) evaluate(ctx context.Context, trip *models.Trip, rules classifier.Rules) (res classifier.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while classifying trip %s: %v", trip.ID, r)
		}
	}()

	// Правка может сделать поездку подозрительной, поэтому прежнее
	// автосогласование снимается. Ручное решение сохраняется
	classifier.RevokeAutoApproval(trip)
	res = classifier.Classify(*trip, rules, s.now())
	classifier.Apply(trip, res)

	if err := s.repo.SaveClassification(ctx, trip); err != nil {
		return res, err
	}

	s.metrics.TripsClassified.WithLabelValues(res.Category).Inc()
	if res.Flagged() {
		s.metrics.TripsFlagged.Inc()
	}
	if res.Approved {
		s.metrics.TripsAutoApproved.Inc()
	}
	return res, nil
}
