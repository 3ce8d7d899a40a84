// Package lifecycle owns booking status transitions.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// Transition moves a booking to next and stamps UpdatedAt.
// The input is never modified; on error the caller keeps the original booking.
func Transition(b domain.Booking, next domain.BookingStatus, now time.Time) (domain.Booking, error) {
	if !next.IsValid() {
		return b, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, next)
	}
	if !b.Status.CanTransitionTo(next) {
		return b, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, b.Status, next)
	}

	updated := b
	updated.Status = next
	updated.UpdatedAt = now
	return updated, nil
}
