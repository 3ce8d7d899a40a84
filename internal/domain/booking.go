package domain

import (
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// allowedTransitions is the complete lifecycle table. Statuses without an entry are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// AllStatuses lists every known status in lifecycle order
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transition leaves this status
func (s BookingStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether the lifecycle table allows s -> next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses returns a copy of the statuses reachable from s
func (s BookingStatus) NextStatuses() []BookingStatus {
	next := allowedTransitions[s]
	out := make([]BookingStatus, len(next))
	copy(out, next)
	return out
}

// OccupiesCapacity returns false for statuses that free their slot
func (s BookingStatus) OccupiesCapacity() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// Customer is the contact snapshot captured at booking time.
// It is not linked to any live customer record.
type Customer struct {
	Name  string
	Email string
	Phone *string
}

// TimeSlot is a half-open [Start, End) interval within one day
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps uses half-open semantics: touching endpoints do not conflict
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	return t.Start.Minutes() < other.End.Minutes() && other.Start.Minutes() < t.End.Minutes()
}

// DurationMinutes returns the slot length
func (t TimeSlot) DurationMinutes() int {
	return t.End.Minutes() - t.Start.Minutes()
}

// Booking represents an appointment for a service type in a workspace
type Booking struct {
	ID            int64
	WorkspaceID   int64
	ServiceTypeID int64
	Customer      Customer
	Date          time.Time // calendar day in the workspace timezone, stored as UTC midnight
	Slot          TimeSlot  // End is frozen at creation time
	Status        BookingStatus
	Notes         *string
	AssignedStaff *string

	// Denormalized data for history
	ServiceName string
	TotalPrice  float64

	// ConsumptionApplied guards inventory consumption from being applied twice
	ConsumptionApplied bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCapacity returns true if the booking still holds its slot
func (b *Booking) OccupiesCapacity() bool {
	return b.Status.OccupiesCapacity()
}

// IsOn returns true if the booking is on the given calendar day
func (b *Booking) IsOn(date time.Time) bool {
	return SameDay(b.Date, date)
}

// NeedsConsumption returns true if the booking is completed but its inventory effects are not applied yet
func (b *Booking) NeedsConsumption() bool {
	return b.Status == StatusCompleted && !b.ConsumptionApplied
}
