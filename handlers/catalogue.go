package handlers

import (
	"net/http"

	"clubbook/models"
	"clubbook/utils"

	"github.com/gin-gonic/gin"
)

func (h *ScheduleHandler) ListBlackoutsHandler(c *gin.Context) {
	blackouts, err := h.Service.ListBlackouts(c.Request.Context(), c.Param("resourceID"))
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to fetch blackout dates", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blackouts": blackouts})
}

func (h *ScheduleHandler) AddBlackoutHandler(c *gin.Context) {
	var body struct {
		Date   string `json:"date" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid date in request body", err.Error())
		return
	}
	blackout, err := h.Service.AddBlackout(c.Request.Context(), c.Param("resourceID"), body.Date, body.Reason)
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to add blackout date", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"blackout": blackout})
}

func (h *ScheduleHandler) RemoveBlackoutHandler(c *gin.Context) {
	if err := h.Service.RemoveBlackout(c.Request.Context(), c.Param("resourceID"), c.Param("date")); err != nil {
		utils.JSONErrorFrom(c, "Failed to remove blackout date", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServices(c.Request.Context(), c.Param("resourceID"))
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to fetch services", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// UpsertServiceHandler creates or replaces the service named in the path.
func (h *ScheduleHandler) UpsertServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	svc.Name = c.Param("name")
	saved, err := h.Service.UpsertService(c.Request.Context(), c.Param("resourceID"), svc)
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to save service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": saved})
}

func (h *ScheduleHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Service.DeleteService(c.Request.Context(), c.Param("resourceID"), c.Param("name")); err != nil {
		utils.JSONErrorFrom(c, "Failed to delete service", err)
		return
	}
	c.Status(http.StatusNoContent)
}
