package domain

import "errors"

// Booking and inventory rule violations. Callers branch on them with errors.Is.
var (
	ErrUnknownService       = errors.New("unknown or inactive service type")
	ErrDateInPast           = errors.New("booking date is in the past")
	ErrSlotUnavailable      = errors.New("requested slot is unavailable")
	ErrInvalidContact       = errors.New("invalid customer contact")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidRestockAmount = errors.New("restock amount must be positive")
)
