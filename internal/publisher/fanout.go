package publisher

import (
	"context"
	"errors"

	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service"
)

var _ service.EventPublisher = Fanout(nil)

// Fanout отдает событие каждому публикатору. Сбой одного не мешает остальным
type Fanout []service.EventPublisher

func (f Fanout) Publish(ctx context.Context, event models.GeofenceEvent) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
