package gps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/drive_journal/internal/config"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendorStub struct {
	authCalls     atomic.Int32
	positionCalls atomic.Int32
	rejectToken   atomic.Bool
	failPositions atomic.Bool
}

func (v *vendorStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		v.authCalls.Add(1)
		var req authRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "fleet" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(authResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	})
	mux.HandleFunc("/vehicles/positions", func(w http.ResponseWriter, r *http.Request) {
		v.positionCalls.Add(1)
		if v.failPositions.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if v.rejectToken.Load() || r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(positionsResponse{Positions: []vehiclePosition{
			{VehicleID: "van-1", Latitude: 59.33, Longitude: 18.06, Speed: 42, Timestamp: time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)},
		}})
	})
	return mux
}

func newTestClient(t *testing.T, stub *vendorStub, cache TokenCache) *Client {
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{
		GPSBaseURL:   srv.URL + "/",
		GPSUsername:  "fleet",
		GPSPassword:  "secret",
		GPSRateLimit: 1000,
		GPSTimeout:   time.Second,
	}
	return NewClient(cfg, cache, logger)
}

func TestFetchPositions_AuthenticatesOnceAndReusesToken(t *testing.T) {
	stub := &vendorStub{}
	client := newTestClient(t, stub, NewMemoryTokenCache())
	ctx := context.Background()

	first, err := client.FetchPositions(ctx)
	require.NoError(t, err)
	_, err = client.FetchPositions(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), stub.authCalls.Load())
	assert.Equal(t, int32(2), stub.positionCalls.Load())
	require.Len(t, first, 1)
	assert.Equal(t, models.PositionSample{
		EntityID:   "van-1",
		Latitude:   59.33,
		Longitude:  18.06,
		SpeedKmh:   42,
		RecordedAt: time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC),
	}, first[0])
}

func TestFetchPositions_ExpiredTokenForcesReauth(t *testing.T) {
	stub := &vendorStub{}
	cache := NewMemoryTokenCache()
	client := newTestClient(t, stub, cache)
	ctx := context.Background()
	start := time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return start }

	_, err := client.FetchPositions(ctx)
	require.NoError(t, err)

	client.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = client.FetchPositions(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(2), stub.authCalls.Load())
	token, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, start.Add(3*time.Hour), token.ExpiresAt)
}

func TestFetchPositions_UnauthorizedClearsToken(t *testing.T) {
	stub := &vendorStub{}
	cache := NewMemoryTokenCache()
	client := newTestClient(t, stub, cache)
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, Token{Value: "stale", ExpiresAt: time.Now().Add(time.Hour)}))

	_, err := client.FetchPositions(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(0), stub.authCalls.Load())
	token, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestFetchPositions_BreakerOpensAfterFailures(t *testing.T) {
	stub := &vendorStub{}
	stub.failPositions.Store(true)
	client := newTestClient(t, stub, NewMemoryTokenCache())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := client.FetchPositions(ctx)
		require.Error(t, err)
	}
	_, err := client.FetchPositions(ctx)

	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(5), stub.positionCalls.Load())
}

func TestToken_Valid(t *testing.T) {
	now := time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)

	var missing *Token
	assert.False(t, missing.Valid(now))
	assert.False(t, (&Token{Value: "", ExpiresAt: now.Add(time.Hour)}).Valid(now))
	assert.False(t, (&Token{Value: "t", ExpiresAt: now.Add(10 * time.Second)}).Valid(now))
	assert.True(t, (&Token{Value: "t", ExpiresAt: now.Add(time.Minute)}).Valid(now))
}

func TestMemoryTokenCache_ReturnsCopy(t *testing.T) {
	cache := NewMemoryTokenCache()
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, Token{Value: "a"}))

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	got.Value = "mutated"

	again, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Value)

	require.NoError(t, cache.Clear(ctx))
	cleared, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, cleared)
}
