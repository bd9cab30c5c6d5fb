package handlers

import (
	"net/http"

	"clubbook/middleware"
	"clubbook/models"
	"clubbook/services/booking"
	"clubbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler books a window of :resourceID for the authenticated party.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	bookedBy := middleware.SubjectID(c)
	if bookedBy == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), c.Param("resourceID"), bookedBy, req)
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to create booking", err)
		return
	}
	getLogger(c).Info("Booking created", zap.String("bookingID", b.ID))
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.Service.CancelBooking(c.Request.Context(), c.Param("bookingID"), middleware.SubjectID(c))
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to cancel booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

func (h *BookingHandler) ListResourceBookingsHandler(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date range", "from and to are required")
		return
	}
	list, err := h.Service.ListResourceBookings(c.Request.Context(), c.Param("resourceID"), from, to)
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	list, err := h.Service.ListMyBookings(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		utils.JSONErrorFrom(c, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}
