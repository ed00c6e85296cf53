package publisher

import (
	"fmt"

	"github.com/shenikar/drive_journal/internal/config"
	"github.com/shenikar/drive_journal/internal/service"
	natsclient "github.com/shenikar/drive_journal/pkg/nats"
	"github.com/shenikar/drive_journal/pkg/rabbitmq"
)

// FromConfig подключается к брокеру из EVENT_BROKER и добавляет его к прочим публикаторам.
// close закрывает открытые соединения
func FromConfig(cfg *config.Config, others ...service.EventPublisher) (Fanout, func(), error) {
	fanout := append(Fanout{}, others...)

	switch cfg.EventBroker {
	case "rabbitmq":
		conn, err := rabbitmq.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			return nil, nil, err
		}
		pub, err := NewRabbitMQPublisher(conn)
		if err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("rabbitmq publisher: %w", err)
		}
		return append(fanout, pub), func() { conn.Close() }, nil
	case "nats":
		nc, err := natsclient.NewNATS(cfg.NATSURL)
		if err != nil {
			return nil, nil, err
		}
		return append(fanout, NewNATSPublisher(nc)), func() { nc.Drain() }, nil
	default:
		return fanout, func() {}, nil
	}
}
