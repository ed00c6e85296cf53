package v1

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/drive_journal/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtClaims(subject string, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func newAuthRouter(t *testing.T, middleware func(*config.Config, *logrus.Logger) gin.HandlerFunc) *gin.Engine {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{APIKeys: []string{"test-api-key"}, JWTSecret: testJWTSecret}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"driver_id": driverID(c)})
	})
	return router
}

func TestAPIKeyAuthMiddleware_NoAPIKey(t *testing.T) {
	router := newAuthRouter(t, APIKeyAuthMiddleware)

	w := makeRequest(router, "GET", "/test", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidAPIKey(t *testing.T) {
	router := newAuthRouter(t, APIKeyAuthMiddleware)

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuthMiddleware_ValidAPIKey(t *testing.T) {
	router := newAuthRouter(t, APIKeyAuthMiddleware)

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerAPIKey(t *testing.T) {
	router := newAuthRouter(t, APIKeyAuthMiddleware)

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDriverAuthMiddleware_APIKeyHasNoDriver(t *testing.T) {
	router := newAuthRouter(t, DriverAuthMiddleware)

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"driver_id":""`)
}

func TestDriverAuthMiddleware_ValidToken(t *testing.T) {
	router := newAuthRouter(t, DriverAuthMiddleware)

	w := makeRequest(router, "GET", "/test", nil, driverHeader(t, "driver-3"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"driver_id":"driver-3"`)
}

func TestDriverAuthMiddleware_RejectsTokens(t *testing.T) {
	router := newAuthRouter(t, DriverAuthMiddleware)

	expired, err := IssueDriverToken(testJWTSecret, DriverClaims{RegisteredClaims: jwtClaims("driver-3", -time.Minute)})
	require.NoError(t, err)
	wrongSecret, err := IssueDriverToken("other-secret", DriverClaims{RegisteredClaims: jwtClaims("driver-3", time.Hour)})
	require.NoError(t, err)
	noExpiry, err := IssueDriverToken(testJWTSecret, DriverClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "driver-3"}})
	require.NoError(t, err)
	noSubject, err := IssueDriverToken(testJWTSecret, DriverClaims{RegisteredClaims: jwtClaims("", time.Hour)})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", wrongSecret},
		{"no expiry", noExpiry},
		{"no subject", noSubject},
		{"garbage", "not-a-jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer " + tc.token})

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "invalid token")
		})
	}
}

func TestDriverAuthMiddleware_Missing(t *testing.T) {
	router := newAuthRouter(t, DriverAuthMiddleware)

	w := makeRequest(router, "GET", "/test", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key or bearer token required")
}

func TestParseDriverToken_DisabledWithoutSecret(t *testing.T) {
	token, err := IssueDriverToken(testJWTSecret, DriverClaims{RegisteredClaims: jwtClaims("driver-1", time.Hour)})
	require.NoError(t, err)

	_, err = parseDriverToken(token, "")
	assert.Error(t, err)
}
