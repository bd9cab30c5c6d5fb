package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a reservation of one bookable window.
type Booking struct {
	ID          string     `bson:"id" json:"id"`
	ResourceID  string     `bson:"resourceId" json:"resourceId"`   // coach or location that was booked
	BookedBy    string     `bson:"bookedBy" json:"bookedBy"`       // booking party
	Date        string     `bson:"date" json:"date"`               // "YYYY-MM-DD"
	StartTime   TimeOfDay  `bson:"startTime" json:"startTime"`     // minutes from midnight
	EndTime     TimeOfDay  `bson:"endTime" json:"endTime"`         // minutes from midnight
	ServiceName string     `bson:"serviceName" json:"serviceName"` // Service.Name
	Status      string     `bson:"status" json:"status"`           // "confirmed" or "cancelled"
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	CancelledAt *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
}

// Active reports whether the booking still occupies its window.
func (b Booking) Active() bool {
	return b.Status != BookingStatusCancelled
}

// BookingKey identifies the window a booking occupies.
type BookingKey struct {
	ResourceID  string
	Date        string
	StartTime   TimeOfDay
	ServiceName string
}

func (b Booking) Key() BookingKey {
	return BookingKey{ResourceID: b.ResourceID, Date: b.Date, StartTime: b.StartTime, ServiceName: b.ServiceName}
}

// CreateBookingRequest is the booking party's choice of window.
type CreateBookingRequest struct {
	Date        string    `json:"date" binding:"required"`
	StartTime   TimeOfDay `json:"startTime"`
	ServiceName string    `json:"serviceName" binding:"required"`
}
