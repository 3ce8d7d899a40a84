// Package availability computes bookable slots from operating hours and existing bookings.
package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

// ComputeSlots returns the available slots of a service type on date, ordered by start time.
//
// Candidate starts are generated inside every open interval of the weekday with the given
// granularity, keeping only those where start+duration fits the interval. A candidate is
// available while fewer than Capacity capacity-holding bookings of the same service type
// overlap it.
func ComputeSlots(
	serviceType domain.ServiceType,
	date time.Time,
	hours domain.OperatingHours,
	existing []domain.Booking,
	granularity int,
) []domain.AvailableSlot {
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}
	if serviceType.DurationMinutes <= 0 {
		return []domain.AvailableSlot{}
	}

	occupied := relevantBookings(serviceType.ID, date, existing)
	seen := make(map[int]struct{})
	result := make([]domain.AvailableSlot, 0)

	for _, interval := range hours.IntervalsFor(date) {
		openAt, closeAt := interval.Start.Minutes(), interval.End.Minutes()
		if openAt < 0 || closeAt < 0 {
			continue
		}

		for start := openAt; start+serviceType.DurationMinutes <= closeAt; start += granularity {
			if _, dup := seen[start]; dup {
				continue
			}
			seen[start] = struct{}{}

			candidate := domain.TimeSlot{
				Start: types.MustFromMinutes(start),
				End:   types.MustFromMinutes(start + serviceType.DurationMinutes),
			}

			overlapping := countOverlapping(candidate, occupied)
			if overlapping >= serviceType.Capacity {
				continue
			}

			result = append(result, domain.AvailableSlot{
				StartTime:      candidate.Start,
				EndTime:        candidate.End,
				AvailableSpots: serviceType.Capacity - overlapping,
				TotalSpots:     serviceType.Capacity,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Minutes() < result[j].StartTime.Minutes()
	})

	return result
}

// Find returns the slot starting at start, if it is available
func Find(slots []domain.AvailableSlot, start types.TimeString) (domain.AvailableSlot, bool) {
	for _, slot := range slots {
		if slot.StartTime.Minutes() == start.Minutes() {
			return slot, true
		}
	}
	return domain.AvailableSlot{}, false
}

// relevantBookings keeps capacity-holding bookings of one service type on one day
func relevantBookings(serviceTypeID int64, date time.Time, bookings []domain.Booking) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		if b.ServiceTypeID != serviceTypeID || !b.OccupiesCapacity() || !b.IsOn(date) {
			continue
		}
		out = append(out, b.Slot)
	}
	return out
}

// countOverlapping counts half-open overlaps; touching endpoints are not counted
func countOverlapping(candidate domain.TimeSlot, occupied []domain.TimeSlot) int {
	count := 0
	for _, slot := range occupied {
		if candidate.Overlaps(slot) {
			count++
		}
	}
	return count
}
