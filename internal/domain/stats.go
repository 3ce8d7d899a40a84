package domain

import "time"

// BookingStats is a rollup over a set of bookings
type BookingStats struct {
	Total         int
	ByStatus      map[BookingStatus]int
	OccupancyRate float64 // confirmed / total, 0 for an empty set
}

// TrendBucket holds per-day counts of a trend window
type TrendBucket struct {
	Date      time.Time
	Confirmed int
	Completed int
	NoShow    int
}

// StaffOccupancy is the committed load of one staff member on a day
type StaffOccupancy struct {
	Staff         string
	Bookings      int
	BookedMinutes int
}
