package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
)

// SourceMQTT - метка источника отметок для метрик и логов
const SourceMQTT = "mqtt"

type positionProcessor interface {
	ProcessPositions(ctx context.Context, source string, samples []models.PositionSample) (*models.PositionReport, error)
}

type locationMessage struct {
	VehicleID string  `json:"vehicle_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Timestamp int64   `json:"timestamp" validate:"gt=0"`
	Speed     float64 `json:"speed" validate:"gte=0"`
}

// LocationSubscriber принимает отметки транспорта из MQTT и передает их детектору геозон
type LocationSubscriber struct {
	client    mqtt.Client
	topic     string
	processor positionProcessor
	validate  *validator.Validate
	logger    *logrus.Logger
	timeout   time.Duration
}

func NewLocationSubscriber(client mqtt.Client, topic string, processor positionProcessor, logger *logrus.Logger) *LocationSubscriber {
	return &LocationSubscriber{
		client:    client,
		topic:     topic,
		processor: processor,
		validate:  validator.New(),
		logger:    logger,
		timeout:   10 * time.Second,
	}
}

// Start подписывается на топик отметок
func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(s.topic, 1, s.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", s.topic, err)
	}
	s.logger.WithField("topic", s.topic).Info("Subscribed to vehicle locations")
	return nil
}

// Stop снимает подписку
func (s *LocationSubscriber) Stop() {
	token := s.client.Unsubscribe(s.topic)
	token.WaitTimeout(5 * time.Second)
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	log := s.logger.WithField("topic", msg.Topic())

	sample, err := s.parse(msg.Payload())
	if err != nil {
		log.WithError(err).Warn("Invalid location message")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.processor.ProcessPositions(ctx, SourceMQTT, []models.PositionSample{sample}); err != nil {
		log.WithError(err).WithField("vehicle_id", sample.EntityID).Error("Failed to process location")
	}
}

func (s *LocationSubscriber) parse(payload []byte) (models.PositionSample, error) {
	var raw locationMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return models.PositionSample{}, fmt.Errorf("decode: %w", err)
	}
	if err := s.validate.Struct(raw); err != nil {
		return models.PositionSample{}, fmt.Errorf("validation: %w", err)
	}

	return models.PositionSample{
		EntityID:   raw.VehicleID,
		Latitude:   raw.Latitude,
		Longitude:  raw.Longitude,
		SpeedKmh:   raw.Speed,
		RecordedAt: time.Unix(raw.Timestamp, 0).UTC(),
	}, nil
}
