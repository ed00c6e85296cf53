package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/drive_journal/internal/config"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url string, retries int) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: retries,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, logger, cfg)
}

func TestDeliver_SignsPayload(t *testing.T) {
	// Подготовка
	payload := []byte(`{"type":"geofence.entered"}`)
	var gotSignature string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()
	worker := newTestWorker(srv.URL, 3)

	// Действие
	err := worker.deliver(context.Background(), payload)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	worker := newTestWorker(srv.URL, 3)

	// Действие
	err := worker.deliver(context.Background(), []byte(`{}`))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	worker := newTestWorker(srv.URL, 2)

	// Действие
	err := worker.deliver(context.Background(), []byte(`{}`))

	// Проверки
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGenerateHMACSHA256_Deterministic(t *testing.T) {
	a := generateHMACSHA256([]byte("payload"), "key")
	b := generateHMACSHA256([]byte("payload"), "key")
	c := generateHMACSHA256([]byte("payload"), "other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestNewWebhookEvent_Envelope(t *testing.T) {
	event := models.GeofenceEvent{ID: uuid.New(), Type: models.GeofenceExited, EntityID: "van-1"}
	now := time.Date(2026, 10, 13, 9, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	env := NewWebhookEvent(event, now)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"geofence.exited"`)
	assert.Equal(t, time.UTC, env.PublishedAt.Location())
	assert.Equal(t, event, env.Data)
}
