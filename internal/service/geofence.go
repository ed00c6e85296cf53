package service

//go:generate mockgen -source=geofence.go -destination=mocks/mock_geofence.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drive_journal/internal/geofence"
	"github.com/shenikar/drive_journal/internal/metrics"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
)

// GeofenceRepository определяет контракт для работы с бд геозон
type GeofenceRepository interface {
	Create(ctx context.Context, fence *models.Geofence) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Geofence, error)
	Update(ctx context.Context, fence *models.Geofence) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]*models.Geofence, error)
	ListActive(ctx context.Context) ([]models.Geofence, error)
	FindActiveLocation(ctx context.Context, lat, lon float64) ([]*models.Geofence, error)
}

// PositionRepository определяет контракт для хранения отметок GPS
type PositionRepository interface {
	SaveBatch(ctx context.Context, samples []models.PositionSample) error
	History(ctx context.Context, entityID string, from, to time.Time) ([]models.PositionSample, error)
	CountActiveEntities(ctx context.Context, minutes int) (int, error)
}

// EventPublisher доставляет события геозон подписчикам
type EventPublisher interface {
	Publish(ctx context.Context, event models.GeofenceEvent) error
}

// GeofenceService определяет контракт для управления геозонами и обработки отметок
type GeofenceService interface {
	CreateGeofence(ctx context.Context, fence *models.Geofence) error
	GetGeofence(ctx context.Context, id uuid.UUID) (*models.Geofence, error)
	UpdateGeofence(ctx context.Context, fence *models.Geofence) error
	DeactivateGeofence(ctx context.Context, id uuid.UUID) error
	ListGeofences(ctx context.Context, page, pageSize int) ([]*models.Geofence, error)
	CheckLocation(ctx context.Context, entityID string, lat, lon float64) ([]*models.Geofence, error)
	ProcessPositions(ctx context.Context, source string, samples []models.PositionSample) (*models.PositionReport, error)
	PositionHistory(ctx context.Context, entityID string, from, to time.Time) ([]models.PositionSample, error)
}

type geofenceService struct {
	repo      GeofenceRepository
	positions PositionRepository
	states    geofence.StateStore
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    *logrus.Logger
}

// NewGeofenceService создает сервис геозон. publisher может быть nil, тогда события только возвращаются
func NewGeofenceService(
	repo GeofenceRepository,
	positions PositionRepository,
	states geofence.StateStore,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger *logrus.Logger,
) GeofenceService {
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	return &geofenceService{
		repo:      repo,
		positions: positions,
		states:    states,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// CreateGeofence создает геозону
func (s *geofenceService) CreateGeofence(ctx context.Context, fence *models.Geofence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "CreateGeofence",
		"name":    fence.Name,
	})
	log.Info("Attempting to create a new geofence")

	fence.IsActive = true
	if err := s.repo.Create(ctx, fence); err != nil {
		log.WithError(err).Error("Failed to create geofence in repository")
		return fmt.Errorf("service: could not create geofence: %w", err)
	}

	log.WithField("geofence_id", fence.ID).Info("Geofence created successfully")
	return nil
}

// GetGeofence получает геозону по ID
func (s *geofenceService) GetGeofence(ctx context.Context, id uuid.UUID) (*models.Geofence, error) {
	fence, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":     "geofence",
			"method":      "GetGeofence",
			"geofence_id": id,
		}).WithError(err).Warn("Failed to get geofence in repository")
		return nil, fmt.Errorf("service: could not get geofence: %w", err)
	}
	return fence, nil
}

// UpdateGeofence обновляет существующую геозону
func (s *geofenceService) UpdateGeofence(ctx context.Context, fence *models.Geofence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "geofence",
		"method":      "UpdateGeofence",
		"geofence_id": fence.ID,
	})
	log.Info("Attempting to update geofence")

	existing, err := s.repo.GetByID(ctx, fence.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent geofence")
		return fmt.Errorf("service: geofence with id %s not found for update: %w", fence.ID, err)
	}

	existing.Name = fence.Name
	existing.Latitude = fence.Latitude
	existing.Longitude = fence.Longitude
	existing.RadiusMeters = fence.RadiusMeters
	existing.AutoCategory = fence.AutoCategory
	wasActive := existing.IsActive
	existing.IsActive = fence.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update geofence in repository")
		return fmt.Errorf("service: could not update geofence: %w", err)
	}
	if wasActive && !existing.IsActive {
		s.forgetState(ctx, log, existing.ID)
	}

	*fence = *existing
	log.Info("Geofence updated successfully")
	return nil
}

// DeactivateGeofence выключает геозону, история событий сохраняется
func (s *geofenceService) DeactivateGeofence(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "geofence",
		"method":      "DeactivateGeofence",
		"geofence_id": id,
	})
	log.Info("Attempting to deactivate geofence")

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate geofence in repository")
		return fmt.Errorf("service: could not deactivate geofence: %w", err)
	}
	s.forgetState(ctx, log, id)

	log.Info("Geofence deactivated successfully")
	return nil
}

// forgetState чистит состояние отключенной геозоны. Ошибка не отменяет отключение:
// неактивные геозоны детектор не читает, а хеш истечет по TTL
func (s *geofenceService) forgetState(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.states.Forget(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to forget geofence state")
	}
}

// ListGeofences возвращает список геозон с пагинацией
func (s *geofenceService) ListGeofences(ctx context.Context, page, pageSize int) ([]*models.Geofence, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	fences, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "geofence",
			"method":  "ListGeofences",
		}).WithError(err).Error("Failed to list geofences from repository")
		return nil, fmt.Errorf("service: could not list geofences: %w", err)
	}
	return fences, nil
}

// CheckLocation находит активные геозоны, содержащие точку
func (s *geofenceService) CheckLocation(ctx context.Context, entityID string, lat, lon float64) ([]*models.Geofence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "geofence",
		"method":    "CheckLocation",
		"entity_id": entityID,
	})

	fences, err := s.repo.FindActiveLocation(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Error("Failed to find active geofences by location")
		return nil, fmt.Errorf("service: failed to find active geofences: %w", err)
	}

	log.WithField("matches", len(fences)).Debug("Location check completed")
	return fences, nil
}

// ProcessPositions сохраняет отметки, определяет переходы через границы геозон
// и публикует события. Ошибка публикации одного события не прерывает остальные
func (s *geofenceService) ProcessPositions(ctx context.Context, source string, samples []models.PositionSample) (*models.PositionReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "ProcessPositions",
		"source":  source,
	})

	report := &models.PositionReport{Received: len(samples), Events: make([]models.GeofenceEvent, 0)}

	valid := make([]models.PositionSample, 0, len(samples))
	for _, sample := range samples {
		if sample.EntityID == "" || !finite(sample.Latitude) || !finite(sample.Longitude) {
			report.Skipped++
			continue
		}
		valid = append(valid, sample)
	}
	if len(valid) == 0 {
		return report, nil
	}

	if err := s.positions.SaveBatch(ctx, valid); err != nil {
		log.WithError(err).Error("Failed to save positions")
		return nil, fmt.Errorf("service: could not save positions: %w", err)
	}
	report.Stored = len(valid)
	s.metrics.PositionsProcessed.WithLabelValues(source).Add(float64(len(valid)))

	fences, err := s.repo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active geofences")
		return nil, fmt.Errorf("service: could not load geofences: %w", err)
	}
	if len(fences) == 0 {
		return report, nil
	}

	prev, err := s.states.Load(ctx, geofence.Keys(valid, fences))
	if err != nil {
		log.WithError(err).Error("Failed to load geofence state")
		return nil, fmt.Errorf("service: could not load geofence state: %w", err)
	}

	events, next := geofence.Detect(prev, valid, fences)
	if err := s.states.Save(ctx, next); err != nil {
		log.WithError(err).Error("Failed to save geofence state")
		return nil, fmt.Errorf("service: could not save geofence state: %w", err)
	}

	for _, event := range events {
		s.metrics.GeofenceEvents.WithLabelValues(event.Type).Inc()
		report.Events = append(report.Events, event)
		if s.publisher == nil {
			continue
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).WithField("event_id", event.ID).Warn("Failed to publish geofence event")
			s.metrics.RecordErrors.WithLabelValues("publish").Inc()
			report.PublishErrors = append(report.PublishErrors, fmt.Sprintf("%s: %v", event.ID, err))
		}
	}

	log.WithFields(logrus.Fields{
		"stored": report.Stored,
		"events": len(report.Events),
	}).Info("Positions processed")
	return report, nil
}

// PositionHistory возвращает трек объекта за период
func (s *geofenceService) PositionHistory(ctx context.Context, entityID string, from, to time.Time) ([]models.PositionSample, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("service: invalid history range %s - %s", from, to)
	}

	samples, err := s.positions.History(ctx, entityID, from, to)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":   "geofence",
			"method":    "PositionHistory",
			"entity_id": entityID,
		}).WithError(err).Error("Failed to load position history")
		return nil, fmt.Errorf("service: could not load position history: %w", err)
	}
	return samples, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
