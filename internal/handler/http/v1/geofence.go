package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a geofence
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param geofence body GeofenceRequest true "Geofence creation request"
// @Success 201 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences [post]
func (h *Handler) createGeofence(c *gin.Context) {
	var input GeofenceRequest
	log := h.logger.WithField("method", "createGeofence")

	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToGeofenceModel(input)
	if err := h.geofenceService.CreateGeofence(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create geofence in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToGeofenceResponse(model))
}

// @Summary Get a list of geofences
// @Tags Geofences
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} GeofenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences [get]
func (h *Handler) listGeofences(c *gin.Context) {
	log := h.logger.WithField("method", "listGeofences")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	fences, err := h.geofenceService.ListGeofences(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list geofences from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToGeofenceResponses(fences))
}

// @Summary Get geofence by ID
// @Tags Geofences
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Geofence ID"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid geofence ID"
// @Failure 404 {object} map[string]string "Geofence not found"
// @Router /geofences/{id} [get]
func (h *Handler) getGeofence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
		return
	}

	fence, err := h.geofenceService.GetGeofence(c.Request.Context(), id)
	if err != nil {
		h.logger.WithField("method", "getGeofence").WithField("id", id).WithError(err).Warn("Failed to get geofence from service")
		respondError(c, err, "geofence not found")
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(fence))
}

// @Summary Update a geofence
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Geofence ID"
// @Param geofence body GeofenceRequest true "Geofence update request"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid geofence ID or request body"
// @Failure 404 {object} map[string]string "Geofence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences/{id} [put]
func (h *Handler) updateGeofence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
		return
	}
	log := h.logger.WithField("method", "updateGeofence").WithField("id", id)

	var input GeofenceRequest
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToGeofenceModel(input)
	model.ID = id

	if err := h.geofenceService.UpdateGeofence(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update geofence in service")
		respondError(c, err, "geofence not found")
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(model))
}

// @Summary Deactivate a geofence
// @Description Deactivate a geofence by its ID. It stops producing events and no longer counts as an office.
// @Tags Geofences
// @Security ApiKeyAuth
// @Param id path string true "Geofence ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid geofence ID"
// @Failure 404 {object} map[string]string "Geofence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences/{id} [delete]
func (h *Handler) deleteGeofence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
		return
	}

	if err := h.geofenceService.DeactivateGeofence(c.Request.Context(), id); err != nil {
		h.logger.WithField("method", "deleteGeofence").WithField("id", id).WithError(err).Error("Failed to deactivate geofence in service")
		respondError(c, err, "geofence not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Check location against geofences
// @Description Return the active geofences that contain the given point.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {array} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input LocationCheckRequest
	log := h.logger.WithField("method", "checkLocation")

	if !h.bind(c, log, &input) {
		return
	}

	fences, err := h.geofenceService.CheckLocation(c.Request.Context(), input.EntityID, input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to check location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToGeofenceResponses(fences))
}

// @Summary Upload position samples
// @Description Store GPS samples and detect geofence transitions. Drivers authenticated by JWT report their own positions.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param positions body PositionsRequest true "Position samples"
// @Success 200 {object} models.PositionReport
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /positions [post]
func (h *Handler) uploadPositions(c *gin.Context) {
	var input PositionsRequest
	log := h.logger.WithField("method", "uploadPositions")

	if !h.bind(c, log, &input) {
		return
	}

	driver := driverID(c)
	samples := DTOToPositionSamples(input, driver)
	for _, s := range samples {
		if s.EntityID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "entity_id is required"})
			return
		}
		if driver != "" && s.EntityID != driver {
			c.JSON(http.StatusForbidden, gin.H{"error": "drivers can only report their own positions"})
			return
		}
	}

	report, err := h.geofenceService.ProcessPositions(c.Request.Context(), "api", samples)
	if err != nil {
		log.WithError(err).Error("Failed to process positions in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Get position history
// @Tags Location
// @Produce json
// @Security ApiKeyAuth
// @Param entity_id path string true "Entity ID"
// @Param from query string true "From (RFC3339)"
// @Param to query string false "To (RFC3339), defaults to now"
// @Success 200 {array} models.PositionSample
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /positions/{entity_id} [get]
func (h *Handler) positionHistory(c *gin.Context) {
	entityID := c.Param("entity_id")
	log := h.logger.WithField("method", "positionHistory").WithField("entity_id", entityID)

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from parameter"})
		return
	}
	to := time.Now()
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to parameter"})
			return
		}
	}
	if !from.Before(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be before to"})
		return
	}

	samples, err := h.geofenceService.PositionHistory(c.Request.Context(), entityID, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to load position history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, samples)
}
