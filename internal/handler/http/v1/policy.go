package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get classification policy
// @Description Stored policy, or configured defaults when none was saved.
// @Tags Policy
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Policy
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /policy [get]
func (h *Handler) getPolicy(c *gin.Context) {
	policy, err := h.policyService.GetPolicy(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "getPolicy").WithError(err).Error("Failed to get policy from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, policy)
}

// @Summary Replace classification policy
// @Description Omitted fields remove the corresponding rule.
// @Tags Policy
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param policy body PolicyRequest true "Policy"
// @Success 200 {object} models.Policy
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /policy [put]
func (h *Handler) updatePolicy(c *gin.Context) {
	var input PolicyRequest
	log := h.logger.WithField("method", "updatePolicy")

	if !h.bind(c, log, &input) {
		return
	}

	policy := DTOToPolicyModel(input)
	if err := h.policyService.UpdatePolicy(c.Request.Context(), policy); err != nil {
		log.WithError(err).Error("Failed to update policy in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, policy)
}
