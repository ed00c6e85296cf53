package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	adminAuth := APIKeyAuthMiddleware(h.cfg, h.logger)
	driverAuth := DriverAuthMiddleware(h.cfg, h.logger)

	// Водительское приложение: ручной ввод поездок и отметки
	api.POST("/trips", driverAuth, h.createTrip)
	api.POST("/positions", driverAuth, h.uploadPositions)

	admin := api.Group("", adminAuth)

	trips := admin.Group("/trips")
	{
		trips.GET("", h.listTrips)
		trips.GET("/stats", h.getStats)
		trips.GET("/export", h.exportTrips)
		trips.POST("/classify", h.classifyPending)
		trips.GET("/:id", h.getTrip)
		trips.PUT("/:id", h.updateTrip)
		trips.DELETE("/:id", h.deleteTrip)
		trips.POST("/:id/review", h.reviewTrip)
		trips.POST("/:id/classify", h.classifyTrip)
	}

	geofences := admin.Group("/geofences")
	{
		geofences.POST("", h.createGeofence)
		geofences.GET("", h.listGeofences)
		geofences.GET("/:id", h.getGeofence)
		geofences.PUT("/:id", h.updateGeofence)
		geofences.DELETE("/:id", h.deleteGeofence)
	}

	admin.GET("/positions/:entity_id", h.positionHistory)
	admin.POST("/location/check", h.checkLocation)
	admin.GET("/policy", h.getPolicy)
	admin.PUT("/policy", h.updatePolicy)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
