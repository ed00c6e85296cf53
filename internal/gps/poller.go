package gps

import (
	"context"
	"time"

	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
)

// SourceGPS - метка источника отметок для метрик и логов
const SourceGPS = "gps"

// PositionSource отдает свежие отметки
type PositionSource interface {
	FetchPositions(ctx context.Context) ([]models.PositionSample, error)
}

// PositionProcessor принимает отметки в обработку
type PositionProcessor interface {
	ProcessPositions(ctx context.Context, source string, samples []models.PositionSample) (*models.PositionReport, error)
}

// Poller периодически забирает отметки у поставщика
type Poller struct {
	source    PositionSource
	processor PositionProcessor
	interval  time.Duration
	logger    *logrus.Logger
}

func NewPoller(source PositionSource, processor PositionProcessor, interval time.Duration, logger *logrus.Logger) *Poller {
	return &Poller{
		source:    source,
		processor: processor,
		interval:  interval,
		logger:    logger,
	}
}

// Run опрашивает поставщика до отмены контекста
func (p *Poller) Run(ctx context.Context) {
	p.logger.WithField("interval", p.interval).Info("Starting GPS poller...")
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.Poll(ctx)
		select {
		case <-ctx.Done():
			p.logger.Info("Stopping GPS poller.")
			return
		case <-ticker.C:
		}
	}
}

// Poll выполняет один цикл опроса. Ошибки логируются, следующий цикл выполняется как обычно
func (p *Poller) Poll(ctx context.Context) {
	samples, err := p.source.FetchPositions(ctx)
	if err != nil {
		p.logger.WithError(err).Warn("Failed to fetch GPS positions")
		return
	}
	if len(samples) == 0 {
		return
	}

	report, err := p.processor.ProcessPositions(ctx, SourceGPS, samples)
	if err != nil {
		p.logger.WithError(err).Error("Failed to process GPS positions")
		return
	}
	p.logger.WithFields(logrus.Fields{
		"received": report.Received,
		"events":   len(report.Events),
	}).Debug("GPS poll completed")
}
