package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

var (
	created = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	now     = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
)

func TestTransition_AllowedTable(t *testing.T) {
	allowed := []struct{ from, to domain.BookingStatus }{
		{domain.StatusPending, domain.StatusConfirmed},
		{domain.StatusPending, domain.StatusCancelled},
		{domain.StatusConfirmed, domain.StatusCompleted},
		{domain.StatusConfirmed, domain.StatusCancelled},
		{domain.StatusConfirmed, domain.StatusNoShow},
	}
	isAllowed := func(from, to domain.BookingStatus) bool {
		for _, a := range allowed {
			if a.from == from && a.to == to {
				return true
			}
		}
		return false
	}

	for _, from := range domain.AllStatuses {
		for _, to := range domain.AllStatuses {
			b := domain.Booking{ID: 1, Status: from, UpdatedAt: created}

			got, err := Transition(b, to, now)

			if isAllowed(from, to) {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, got.Status)
				assert.Equal(t, now, got.UpdatedAt)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s -> %s", from, to)
				assert.Equal(t, from, got.Status)
				assert.Equal(t, created, got.UpdatedAt)
			}
			// исходное бронирование не меняется
			assert.Equal(t, from, b.Status)
		}
	}
}

func TestTransition_PendingCannotCompleteDirectly(t *testing.T) {
	b := domain.Booking{ID: 1, Status: domain.StatusPending}

	got, err := Transition(b, domain.StatusCompleted, now)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestTransition_UnknownStatus(t *testing.T) {
	b := domain.Booking{Status: domain.StatusPending}

	_, err := Transition(b, domain.BookingStatus("archived"), now)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
