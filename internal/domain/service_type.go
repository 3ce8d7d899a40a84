package domain

import "time"

// ServiceType is a bookable service definition of a workspace
type ServiceType struct {
	ID              int64
	WorkspaceID     int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           *float64 // nil = price on request
	Capacity        int      // concurrent bookings allowed in overlapping slots
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PriceSnapshot returns the price to freeze into a new booking
func (s *ServiceType) PriceSnapshot() float64 {
	if s.Price == nil {
		return 0
	}
	return *s.Price
}

// IsBookable returns true if new bookings may reference this service type
func (s *ServiceType) IsBookable() bool {
	return s.IsActive && s.DurationMinutes > 0 && s.Capacity >= MinCapacity
}
