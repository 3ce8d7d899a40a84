package domain

import "github.com/m04kA/SMC-ResourceBookingService/pkg/types"

// AvailableSlot represents a bookable time slot
type AvailableSlot struct {
	StartTime      types.TimeString
	EndTime        types.TimeString
	AvailableSpots int
	TotalSpots     int
}

// IsFullyAvailable returns true if nothing overlaps the slot yet
func (s *AvailableSlot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}
