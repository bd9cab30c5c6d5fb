// models/service_type.go
package models

// Service is a bookable offering of a resource. Duration is authoritative for
// subdividing declared slots.
type Service struct {
	ResourceID string `bson:"resourceId" json:"resourceId"`
	Name       string `bson:"name" json:"name"`         // unique per resource, e.g. "Goalkeeping 1:1"
	Duration   int    `bson:"duration" json:"duration"` // in minutes
	Color      string `bson:"color,omitempty" json:"color,omitempty"`
}

// Validate rejects services that can never produce a window.
func (s Service) Validate() error {
	if s.Name == "" {
		return InvalidService("service name is required")
	}
	if s.Duration <= 0 {
		return InvalidService("service %q has non-positive duration %d", s.Name, s.Duration)
	}
	return nil
}
