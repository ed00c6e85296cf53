package nats

import (
	"fmt"
	"time"

	natsgo "github.com/nats-io/nats.go"
)

// NewNATS подключается к серверу NATS
func NewNATS(url string) (*natsgo.Conn, error) {
	nc, err := natsgo.Connect(url,
		natsgo.Name("drive-journal"),
		natsgo.MaxReconnects(10),
		natsgo.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return nc, nil
}
