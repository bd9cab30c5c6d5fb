package handlers

import (
	"net/http"

	"clubbook/models"
	"clubbook/services/planner"
	"clubbook/utils"

	"github.com/gin-gonic/gin"
)

// slotRequest is the body of add and edit. ClickedDate is the calendar cell the
// coach acted on; it pins non-recurring slots.
type slotRequest struct {
	Slot        models.SlotRecord `json:"slot"`
	ClickedDate string            `json:"clickedDate"`
}

func (h *ScheduleHandler) ListSlotsHandler(c *gin.Context) {
	slots, err := h.Service.ListSlots(c.Request.Context(), c.Param("resourceID"))
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to fetch slots", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *ScheduleHandler) AddSlotHandler(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	h.apply(c, http.StatusCreated, planner.AddSlot{Draft: req.Slot, ClickedDate: req.ClickedDate})
}

func (h *ScheduleHandler) EditSlotHandler(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	h.apply(c, http.StatusOK, planner.EditSlot{ID: c.Param("slotID"), Draft: req.Slot, ClickedDate: req.ClickedDate})
}

// DeleteSlotHandler deletes the whole series, or with ?date= the occurrence
// shown on that date.
func (h *ScheduleHandler) DeleteSlotHandler(c *gin.Context) {
	slotID := c.Param("slotID")
	if date := c.Query("date"); date != "" {
		h.apply(c, http.StatusOK, planner.DeleteOccurrence{ID: slotID, Date: date})
		return
	}
	h.apply(c, http.StatusOK, planner.DeleteSeries{ID: slotID})
}

func (h *ScheduleHandler) CopySlotHandler(c *gin.Context) {
	var body struct {
		TargetDate string `json:"targetDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid targetDate", err.Error())
		return
	}
	h.apply(c, http.StatusCreated, planner.CopySlot{SourceID: c.Param("slotID"), TargetDate: body.TargetDate})
}

func (h *ScheduleHandler) apply(c *gin.Context, status int, cmd planner.Command) {
	plan, err := h.Service.ApplyCommand(c.Request.Context(), c.Param("resourceID"), cmd)
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to update slots", err)
		return
	}

	written := make([]models.SlotRecord, 0, len(plan.Effects))
	for _, e := range plan.Effects {
		if e.Kind == planner.EffectWrite && e.Slot != nil {
			written = append(written, models.RecordFromSlot(*e.Slot))
		}
	}
	c.JSON(status, gin.H{"effects": plan.Effects, "slots": written, "warnings": plan.Warnings})
}
