package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/drive_journal/internal/models"
)

// @Summary Create a trip
// @Description Create a driving-journal entry. Drivers authenticated by JWT always create trips for themselves.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param trip body TripRequest true "Trip creation request"
// @Success 201 {object} TripResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips [post]
func (h *Handler) createTrip(c *gin.Context) {
	var input TripRequest
	log := h.logger.WithField("method", "createTrip")

	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToTripModel(input)
	if driver := driverID(c); driver != "" {
		model.DriverID = driver
	}

	if err := h.tripService.CreateTrip(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create trip in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToTripResponse(model))
}

// @Summary Get a list of trips
// @Description Get a filtered, paginated list of trips. Requires API key.
// @Tags Trips
// @Produce json
// @Security ApiKeyAuth
// @Param driver_id query string false "Driver ID"
// @Param category query string false "Category" Enums(unclassified, business, private)
// @Param status query string false "Status" Enums(pending, approved, rejected)
// @Param flagged query bool false "Only flagged or unflagged trips"
// @Param from query string false "Started at or after (RFC3339)"
// @Param to query string false "Started before (RFC3339)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} TripResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips [get]
func (h *Handler) listTrips(c *gin.Context) {
	log := h.logger.WithField("method", "listTrips")

	filter, err := parseTripFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list trips from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToTripResponses(trips))
}

// @Summary Get trip by ID
// @Tags Trips
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} TripResponse
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/{id} [get]
func (h *Handler) getTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "getTrip").WithField("id", id)

	trip, err := h.tripService.GetTrip(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get trip from service")
		respondError(c, err, "trip not found")
		return
	}
	c.JSON(http.StatusOK, ModelToTripResponse(trip))
}

// @Summary Update a trip
// @Description Update trip data. The trip is re-classified immediately.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Param trip body TripRequest true "Trip update request"
// @Success 200 {object} TripResponse
// @Failure 400 {object} map[string]string "Invalid trip ID or request body"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/{id} [put]
func (h *Handler) updateTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "updateTrip").WithField("id", id)

	var input TripRequest
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToTripModel(input)
	model.ID = id

	if err := h.tripService.UpdateTrip(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update trip in service")
		respondError(c, err, "trip not found")
		return
	}
	c.JSON(http.StatusOK, ModelToTripResponse(model))
}

// @Summary Delete a trip
// @Tags Trips
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/{id} [delete]
func (h *Handler) deleteTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "deleteTrip").WithField("id", id)

	if err := h.tripService.DeleteTrip(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete trip in service")
		respondError(c, err, "trip not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Review a trip
// @Description Approve or reject a trip manually.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Param review body ReviewTripRequest true "Review decision"
// @Success 200 {object} TripResponse
// @Failure 400 {object} map[string]string "Invalid trip ID or request body"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/{id}/review [post]
func (h *Handler) reviewTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "reviewTrip").WithField("id", id)

	var input ReviewTripRequest
	if !h.bind(c, log, &input) {
		return
	}

	trip, err := h.tripService.ReviewTrip(c.Request.Context(), id, input.Status, input.ReviewedBy)
	if err != nil {
		log.WithError(err).Error("Failed to review trip in service")
		respondError(c, err, "trip not found")
		return
	}
	c.JSON(http.StatusOK, ModelToTripResponse(trip))
}

// @Summary Classify a trip
// @Description Re-evaluate category, flags and auto-approval of one trip.
// @Tags Trips
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} TripResponse
// @Failure 400 {object} map[string]string "Invalid trip ID"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/{id}/classify [post]
func (h *Handler) classifyTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip ID"})
		return
	}
	log := h.logger.WithField("method", "classifyTrip").WithField("id", id)

	trip, err := h.tripService.ClassifyTrip(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to classify trip in service")
		respondError(c, err, "trip not found")
		return
	}
	c.JSON(http.StatusOK, ModelToTripResponse(trip))
}

// @Summary Classify pending trips
// @Description Run one classification batch over unclassified trips. Per-trip failures are reported in the result.
// @Tags Trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param batch body ClassifyRequest false "Batch size"
// @Success 200 {object} models.BatchReport
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/classify [post]
func (h *Handler) classifyPending(c *gin.Context) {
	var input ClassifyRequest
	log := h.logger.WithField("method", "classifyPending")

	if c.Request.ContentLength > 0 && !h.bind(c, log, &input) {
		return
	}

	report, err := h.tripService.ClassifyPending(c.Request.Context(), input.Limit)
	if err != nil {
		log.WithError(err).Error("Failed to classify pending trips")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Get journal statistics
// @Description Trip counts by category and status, flagged trips and entities active within the stats window.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.TripStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.tripService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Export trips as CSV
// @Description Driving-journal report for all trips matching the filter.
// @Tags Trips
// @Produce text/csv
// @Security ApiKeyAuth
// @Param driver_id query string false "Driver ID"
// @Param category query string false "Category"
// @Param status query string false "Status"
// @Param from query string false "Started at or after (RFC3339)"
// @Param to query string false "Started before (RFC3339)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /trips/export [get]
func (h *Handler) exportTrips(c *gin.Context) {
	log := h.logger.WithField("method", "exportTrips")

	filter, err := parseTripFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := h.tripService.ExportCSV(c.Request.Context(), filter, &buf); err != nil {
		log.WithError(err).Error("Failed to export trips")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="drive_journal.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func parseTripFilter(c *gin.Context) (models.TripFilter, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	filter := models.TripFilter{
		DriverID: c.Query("driver_id"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("flagged"); raw != "" {
		flagged, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid flagged parameter: %w", err)
		}
		filter.Flagged = &flagged
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from parameter: %w", err)
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to parameter: %w", err)
		}
		filter.To = &to
	}
	return filter, nil
}
