package v1

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/drive_journal/internal/config"
	"github.com/sirupsen/logrus"
)

// driverIDKey - ключ контекста gin с ID водителя из JWT
const driverIDKey = "driver_id"

// DriverClaims - claims токена водительского приложения. Subject - ID водителя
type DriverClaims struct {
	VehicleID string `json:"vehicle_id,omitempty"`
	jwt.RegisteredClaims
}

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := requestAPIKey(c)
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !validAPIKey(cfg, apiKey) {
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// DriverAuthMiddleware пропускает запросы с API-ключом администратора либо с JWT водителя.
// Для JWT ID водителя из sub кладется в контекст
func DriverAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := requestAPIKey(c)
		if credential == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key or bearer token required"})
			return
		}

		if validAPIKey(cfg, credential) {
			c.Next()
			return
		}

		claims, err := parseDriverToken(credential, cfg.JWTSecret)
		if err != nil {
			log.WithError(err).Warn("Invalid driver token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(driverIDKey, claims.Subject)
		c.Next()
	}
}

// IssueDriverToken подписывает токен водителя. Используется тестами и утилитами выдачи
func IssueDriverToken(secret string, claims DriverClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseDriverToken(tokenStr, secret string) (*DriverClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("driver tokens are disabled")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &DriverClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*DriverClaims)
	if !ok || claims.Subject == "" {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// requestAPIKey читает X-API-Key, затем Authorization: Bearer
func requestAPIKey(c *gin.Context) string {
	if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
		return apiKey
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

func validAPIKey(cfg *config.Config, apiKey string) bool {
	for _, key := range cfg.APIKeys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			return true
		}
	}
	return false
}

// driverID возвращает ID водителя из JWT или пустую строку для администратора
func driverID(c *gin.Context) string {
	return c.GetString(driverIDKey)
}
