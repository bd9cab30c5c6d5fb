package models

// BookableWindow is a concrete, service-sized interval derived from a declared slot.
// It is computed on demand and never stored.
type BookableWindow struct {
	Date         string    `json:"date"`
	StartTime    TimeOfDay `json:"startTime"`
	EndTime      TimeOfDay `json:"endTime"`
	Service      string    `json:"service"`
	SourceSlotID string    `json:"sourceSlotId"`
	IsBooked     bool      `json:"isBooked"`
}

// Key identifies the booking tuple that would occupy w for resourceID.
func (w BookableWindow) Key(resourceID string) BookingKey {
	return BookingKey{ResourceID: resourceID, Date: w.Date, StartTime: w.StartTime, ServiceName: w.Service}
}
