package models

import "time"

// BlackoutDate is a calendar date on which no declared slot is offered.
type BlackoutDate struct {
	ResourceID string    `bson:"resourceId" json:"resourceId"`
	Date       string    `bson:"date" json:"date"` // e.g. "2025-02-25"
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
