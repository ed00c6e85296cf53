package gps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/drive_journal/internal/config"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// ErrUnauthorized возвращается, когда поставщик отклонил токен. Токен сбрасывается,
// следующий опрос авторизуется заново
var ErrUnauthorized = errors.New("gps: unauthorized")

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type vehiclePosition struct {
	VehicleID string    `json:"vehicle_id"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
	Speed     float64   `json:"speed"`
	Timestamp time.Time `json:"timestamp"`
}

type positionsResponse struct {
	Positions []vehiclePosition `json:"positions"`
}

// Client - клиент API поставщика GPS. Запросы идут через лимитер и предохранитель,
// повторов нет: пропущенный опрос покрывается следующим
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	cache      TokenCache
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker
	logger     *logrus.Logger
	now        func() time.Time
}

func NewClient(cfg *config.Config, cache TokenCache, logger *logrus.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gps-vendor",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("GPS circuit breaker state changed")
		},
	})

	limit := cfg.GPSRateLimit
	if limit <= 0 {
		limit = 1
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.GPSBaseURL, "/"),
		username:   cfg.GPSUsername,
		password:   cfg.GPSPassword,
		httpClient: &http.Client{Timeout: cfg.GPSTimeout},
		cache:      cache,
		limiter:    rate.NewLimiter(rate.Limit(limit), 1),
		cb:         cb,
		logger:     logger,
		now:        time.Now,
	}
}

// FetchPositions возвращает последние отметки всех транспортных средств
func (c *Client) FetchPositions(ctx context.Context) ([]models.PositionSample, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	result, err := c.cb.Execute(func() (interface{}, error) {
		token, err := c.token(ctx)
		if err != nil {
			return nil, err
		}
		return c.positions(ctx, token)
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.PositionSample), nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	cached, err := c.cache.Get(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to read GPS token from cache")
	}
	if cached.Valid(c.now()) {
		return cached.Value, nil
	}

	body, err := json.Marshal(authRequest{Username: c.username, Password: c.password})
	if err != nil {
		return "", fmt.Errorf("failed to marshal auth request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var auth authResponse
	if err := c.do(req, &auth); err != nil {
		return "", fmt.Errorf("gps auth: %w", err)
	}
	if auth.AccessToken == "" {
		return "", errors.New("gps auth: empty access token")
	}

	token := Token{
		Value:     auth.AccessToken,
		ExpiresAt: c.now().Add(time.Duration(auth.ExpiresIn) * time.Second),
	}
	if err := c.cache.Set(ctx, token); err != nil {
		c.logger.WithError(err).Warn("Failed to cache GPS token")
	}
	c.logger.WithField("expires_at", token.ExpiresAt).Debug("GPS token refreshed")
	return token.Value, nil
}

func (c *Client) positions(ctx context.Context, token string) ([]models.PositionSample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/vehicles/positions", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create positions request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var resp positionsResponse
	if err := c.do(req, &resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			if clearErr := c.cache.Clear(ctx); clearErr != nil {
				c.logger.WithError(clearErr).Warn("Failed to clear GPS token")
			}
		}
		return nil, fmt.Errorf("gps positions: %w", err)
	}

	samples := make([]models.PositionSample, 0, len(resp.Positions))
	for _, p := range resp.Positions {
		samples = append(samples, models.PositionSample{
			EntityID:   p.VehicleID,
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			SpeedKmh:   p.Speed,
			RecordedAt: p.Timestamp,
		})
	}
	return samples, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
