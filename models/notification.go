package models

// BookingNotificationPayload is the body of the booking confirmation and reminder tasks.
type BookingNotificationPayload struct {
	BookingID   string `json:"bookingId"`
	ResourceID  string `json:"resourceId"`
	BookedBy    string `json:"bookedBy"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	ServiceName string `json:"serviceName"`
	Kind        string `json:"kind"` // "confirmed" or "reminder"
}
