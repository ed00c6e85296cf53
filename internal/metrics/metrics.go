package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// Поездки, прошедшие классификацию, по итоговой категории
	TripsClassified *prometheus.CounterVec

	// Поездки, помеченные для ручной проверки
	TripsFlagged prometheus.Counter

	// Поездки, согласованные автоматически
	TripsAutoApproved prometheus.Counter

	// Ошибки по отдельным записям в пакетной обработке
	RecordErrors *prometheus.CounterVec

	// Длительность пакетного прогона классификатора
	BatchDuration prometheus.Histogram

	// События геозон по типу
	GeofenceEvents *prometheus.CounterVec

	// Обработанные отметки GPS по источнику
	PositionsProcessed *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	// Если рег не передан, используем локальный, который никуда не подключен
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		TripsClassified: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "drive_journal_trips_classified_total",
			Help: "Total number of classified trips by category.",
		}, []string{"category"}),

		TripsFlagged: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "drive_journal_trips_flagged_total",
			Help: "Total number of trips flagged for review.",
		}),

		TripsAutoApproved: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "drive_journal_trips_auto_approved_total",
			Help: "Total number of trips approved without human review.",
		}),

		RecordErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "drive_journal_record_errors_total",
			Help: "Total number of per-record failures in batch processing.",
		}, []string{"stage"}), // stage: classify, publish

		BatchDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "drive_journal_classification_batch_duration_seconds",
			Help:    "Histogram of classification batch durations.",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),

		GeofenceEvents: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "drive_journal_geofence_events_total",
			Help: "Total number of geofence transitions by type.",
		}, []string{"type"}),

		PositionsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "drive_journal_positions_processed_total",
			Help: "Total number of processed position samples by source.",
		}, []string{"source"}),
	}
}
