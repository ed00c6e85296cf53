package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/drive_journal/internal/config"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	tripService     service.TripService
	geofenceService service.GeofenceService
	policyService   service.PolicyService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	tripService service.TripService,
	geofenceService service.GeofenceService,
	policyService service.PolicyService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		tripService:     tripService,
		geofenceService: geofenceService,
		policyService:   policyService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bind разбирает и валидирует тело запроса. При ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError отвечает 404 для отсутствующих сущностей и 500 для остального
func respondError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
