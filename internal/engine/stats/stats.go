// Package stats derives read-only rollups from a set of bookings.
package stats

import (
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// Summarize counts bookings per status. Every known status is present in ByStatus.
func Summarize(bookings []domain.Booking) domain.BookingStats {
	byStatus := make(map[domain.BookingStatus]int, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		byStatus[s] = 0
	}
	for i := range bookings {
		byStatus[bookings[i].Status]++
	}

	return domain.BookingStats{
		Total:         len(bookings),
		ByStatus:      byStatus,
		OccupancyRate: OccupancyRate(byStatus[domain.StatusConfirmed], len(bookings)),
	}
}

// OccupancyRate is confirmed / total, 0 when total is 0
func OccupancyRate(confirmed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(confirmed) / float64(total)
}

// Trend returns one bucket per day of [from, from+days), including days without bookings
func Trend(bookings []domain.Booking, from time.Time, days int) []domain.TrendBucket {
	if days <= 0 {
		return []domain.TrendBucket{}
	}

	start := domain.DateOf(from)
	buckets := make([]domain.TrendBucket, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		buckets[i] = domain.TrendBucket{Date: day}
		index[day.Format(domain.DateFormat)] = i
	}

	for i := range bookings {
		pos, ok := index[domain.DateOf(bookings[i].Date).Format(domain.DateFormat)]
		if !ok {
			continue
		}
		switch bookings[i].Status {
		case domain.StatusConfirmed:
			buckets[pos].Confirmed++
		case domain.StatusCompleted:
			buckets[pos].Completed++
		case domain.StatusNoShow:
			buckets[pos].NoShow++
		}
	}

	return buckets
}

// TrailingWindowStart returns the first day of a window of days ending on today
func TrailingWindowStart(today time.Time, days int) time.Time {
	if days <= 0 {
		return domain.DateOf(today)
	}
	return domain.DateOf(today).AddDate(0, 0, -(days - 1))
}
