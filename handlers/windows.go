package handlers

import (
	"net/http"

	"clubbook/services/schedule"
	"clubbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetWindowsHandler serves ?date=YYYY-MM-DD or ?from=...&to=...
func (h *ScheduleHandler) GetWindowsHandler(c *gin.Context) {
	resourceID := c.Param("resourceID")

	if date := c.Query("date"); date != "" {
		res, err := h.Service.WindowsForDate(c.Request.Context(), resourceID, date)
		if err != nil {
			utils.JSONErrorFrom(c, "Failed to compute availability", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": res.Date, "windows": res.Windows, "warnings": res.Warnings})
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date", "pass either date or from and to")
		return
	}
	results, err := h.Service.WindowsForRange(c.Request.Context(), resourceID, from, to)
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to compute availability", err)
		return
	}

	days := make([]gin.H, 0, len(results))
	for _, res := range results {
		days = append(days, gin.H{"date": res.Date, "windows": res.Windows, "warnings": res.Warnings})
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (h *ScheduleHandler) CalendarHandler(c *gin.Context) {
	resourceID := c.Param("resourceID")
	body, err := h.Service.CalendarICS(c.Request.Context(), resourceID)
	if err != nil {
		getLogger(c).Error("Failed to export calendar", zap.String("resourceID", resourceID), zap.Error(err))
		utils.JSONErrorFrom(c, "Failed to export calendar", err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="availability.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}
