// File: clubbook/handlers/bundle.go
package handlers

import (
	"clubbook/services/booking"
	"clubbook/services/schedule"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability (public)
	GetWindowsHandler   gin.HandlerFunc
	ListSlotsHandler    gin.HandlerFunc
	ListServicesHandler gin.HandlerFunc
	CalendarHandler     gin.HandlerFunc

	// Schedule management (resource owner)
	AddSlotHandler        gin.HandlerFunc
	EditSlotHandler       gin.HandlerFunc
	DeleteSlotHandler     gin.HandlerFunc
	CopySlotHandler       gin.HandlerFunc
	ListBlackoutsHandler  gin.HandlerFunc
	AddBlackoutHandler    gin.HandlerFunc
	RemoveBlackoutHandler gin.HandlerFunc
	UpsertServiceHandler  gin.HandlerFunc
	DeleteServiceHandler  gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler        gin.HandlerFunc
	CancelBookingHandler        gin.HandlerFunc
	ListResourceBookingsHandler gin.HandlerFunc
	ListMyBookingsHandler       gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(scheduleSvc schedule.ScheduleService, bookingSvc booking.BookingService) *HandlerBundle {
	sh := NewScheduleHandler(scheduleSvc)
	bh := NewBookingHandler(bookingSvc)
	return &HandlerBundle{
		GetWindowsHandler:   sh.GetWindowsHandler,
		ListSlotsHandler:    sh.ListSlotsHandler,
		ListServicesHandler: sh.ListServicesHandler,
		CalendarHandler:     sh.CalendarHandler,

		AddSlotHandler:        sh.AddSlotHandler,
		EditSlotHandler:       sh.EditSlotHandler,
		DeleteSlotHandler:     sh.DeleteSlotHandler,
		CopySlotHandler:       sh.CopySlotHandler,
		ListBlackoutsHandler:  sh.ListBlackoutsHandler,
		AddBlackoutHandler:    sh.AddBlackoutHandler,
		RemoveBlackoutHandler: sh.RemoveBlackoutHandler,
		UpsertServiceHandler:  sh.UpsertServiceHandler,
		DeleteServiceHandler:  sh.DeleteServiceHandler,

		CreateBookingHandler:        bh.CreateBookingHandler,
		CancelBookingHandler:        bh.CancelBookingHandler,
		ListResourceBookingsHandler: bh.ListResourceBookingsHandler,
		ListMyBookingsHandler:       bh.ListMyBookingsHandler,
	}
}
