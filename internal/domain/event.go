package domain

import "time"

// EventType is the routing key of a booking event
type EventType string

const (
	EventBookingCreated       EventType = "booking.created"
	EventBookingStatusChanged EventType = "booking.status_changed"
)

// BookingEvent is emitted after a booking is created or changes status
type BookingEvent struct {
	EventID     string
	Type        EventType
	BookingID   int64
	WorkspaceID int64
	Status      BookingStatus
	OccurredAt  time.Time
}

// NewBookingEvent describes the current state of b. EventID is left for the publisher.
func NewBookingEvent(t EventType, b Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Type:        t,
		BookingID:   b.ID,
		WorkspaceID: b.WorkspaceID,
		Status:      b.Status,
		OccurredAt:  now,
	}
}
