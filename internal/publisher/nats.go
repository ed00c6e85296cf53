package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service"
)

var _ service.EventPublisher = (*NATSPublisher)(nil)

const subjectPrefix = "fleet.geofence."

// natsConn - то, что публикатору нужно от *nats.Conn
type natsConn interface {
	Publish(subj string, data []byte) error
}

// NATSPublisher публикует события в subject fleet.geofence.<type>
type NATSPublisher struct {
	nc natsConn
}

func NewNATSPublisher(nc natsConn) *NATSPublisher {
	return &NATSPublisher{nc: nc}
}

func (p *NATSPublisher) Publish(ctx context.Context, event models.GeofenceEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(newAlertMessage(event))
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	if err := p.nc.Publish(subjectPrefix+event.Type, data); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}
