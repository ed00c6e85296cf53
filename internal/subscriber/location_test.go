package subscriber

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

type recordingProcessor struct {
	source  string
	samples []models.PositionSample
}

func (p *recordingProcessor) ProcessPositions(_ context.Context, source string, samples []models.PositionSample) (*models.PositionReport, error) {
	p.source = source
	p.samples = append(p.samples, samples...)
	return &models.PositionReport{Received: len(samples)}, nil
}

func newTestSubscriber() (*LocationSubscriber, *recordingProcessor) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	proc := &recordingProcessor{}
	return NewLocationSubscriber(nil, "/fleet/vehicle/+/location", proc, logger), proc
}

func TestHandleMessage_ForwardsValidSample(t *testing.T) {
	sub, proc := newTestSubscriber()
	payload := []byte(`{"vehicle_id":"van-1","latitude":59.33,"longitude":18.06,"timestamp":1791882000,"speed":40}`)

	sub.handleMessage(nil, fakeMessage{topic: "/fleet/vehicle/van-1/location", payload: payload})

	require.Len(t, proc.samples, 1)
	assert.Equal(t, SourceMQTT, proc.source)
	assert.Equal(t, models.PositionSample{
		EntityID:   "van-1",
		Latitude:   59.33,
		Longitude:  18.06,
		SpeedKmh:   40,
		RecordedAt: time.Unix(1791882000, 0).UTC(),
	}, proc.samples[0])
}

func TestParse_RejectsInvalidMessages(t *testing.T) {
	sub, _ := newTestSubscriber()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "broken json", payload: `{"vehicle_id":`},
		{name: "missing vehicle", payload: `{"latitude":1,"longitude":1,"timestamp":10}`},
		{name: "latitude out of range", payload: `{"vehicle_id":"v","latitude":91,"longitude":1,"timestamp":10}`},
		{name: "longitude out of range", payload: `{"vehicle_id":"v","latitude":1,"longitude":-181,"timestamp":10}`},
		{name: "missing timestamp", payload: `{"vehicle_id":"v","latitude":1,"longitude":1}`},
		{name: "negative speed", payload: `{"vehicle_id":"v","latitude":1,"longitude":1,"timestamp":10,"speed":-3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sub.parse([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}

func TestHandleMessage_InvalidPayloadNotProcessed(t *testing.T) {
	sub, proc := newTestSubscriber()

	sub.handleMessage(nil, fakeMessage{payload: []byte(`not json`)})

	assert.Empty(t, proc.samples)
}
