// Package validator turns a booking request into a pending Booking or a typed rejection.
// It is the only place where a new Booking value is constructed.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/internal/engine/availability"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Input is a customer's booking request
type Input struct {
	WorkspaceID   int64
	ServiceTypeID int64
	Date          time.Time
	StartTime     types.TimeString
	Customer      domain.Customer
	Notes         *string
	AssignedStaff *string
}

// RequestBooking validates in against the catalog, the schedule and the existing bookings.
//
// Checks run in a fixed order and the first failure wins:
// unknown service, date in the past, slot unavailable, invalid contact.
// The returned booking is pending, has no ID and its end time is start + duration.
func RequestBooking(
	in Input,
	catalog []domain.ServiceType,
	schedule domain.WorkspaceSchedule,
	existing []domain.Booking,
	now time.Time,
) (domain.Booking, error) {
	serviceType, ok := lookup(catalog, in.ServiceTypeID)
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: id=%d", domain.ErrUnknownService, in.ServiceTypeID)
	}

	date := domain.DateOf(in.Date)
	if date.Before(schedule.Today(now)) {
		return domain.Booking{}, fmt.Errorf("%w: %s", domain.ErrDateInPast, date.Format(domain.DateFormat))
	}

	slots := availability.ComputeSlots(serviceType, date, schedule.Hours, existing, schedule.Granularity())
	slot, ok := availability.Find(slots, in.StartTime)
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: %s %s", domain.ErrSlotUnavailable,
			date.Format(domain.DateFormat), in.StartTime)
	}

	customer, err := normalizeCustomer(in.Customer)
	if err != nil {
		return domain.Booking{}, err
	}

	return domain.Booking{
		WorkspaceID:   in.WorkspaceID,
		ServiceTypeID: serviceType.ID,
		Customer:      customer,
		Date:          date,
		Slot:          domain.TimeSlot{Start: slot.StartTime, End: slot.EndTime},
		Status:        domain.StatusPending,
		Notes:         in.Notes,
		AssignedStaff: in.AssignedStaff,
		ServiceName:   serviceType.Name,
		TotalPrice:    serviceType.PriceSnapshot(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ValidateContact checks the required contact fields
func ValidateContact(c domain.Customer) error {
	_, err := normalizeCustomer(c)
	return err
}

func normalizeCustomer(c domain.Customer) (domain.Customer, error) {
	name := strings.TrimSpace(c.Name)
	email := strings.TrimSpace(c.Email)

	if name == "" {
		return domain.Customer{}, fmt.Errorf("%w: name is required", domain.ErrInvalidContact)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return domain.Customer{}, fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidContact, domain.MaxNameLength)
	}
	if email == "" {
		return domain.Customer{}, fmt.Errorf("%w: email is required", domain.ErrInvalidContact)
	}
	if utf8.RuneCountInString(email) > domain.MaxEmailLength {
		return domain.Customer{}, fmt.Errorf("%w: email exceeds %d characters", domain.ErrInvalidContact, domain.MaxEmailLength)
	}
	if !emailPattern.MatchString(email) {
		return domain.Customer{}, fmt.Errorf("%w: malformed email %q", domain.ErrInvalidContact, email)
	}

	out := domain.Customer{Name: name, Email: email}
	if c.Phone != nil {
		if phone := strings.TrimSpace(*c.Phone); phone != "" {
			if utf8.RuneCountInString(phone) > domain.MaxPhoneLength {
				return domain.Customer{}, fmt.Errorf("%w: phone exceeds %d characters", domain.ErrInvalidContact, domain.MaxPhoneLength)
			}
			out.Phone = &phone
		}
	}
	return out, nil
}

func lookup(catalog []domain.ServiceType, id int64) (domain.ServiceType, bool) {
	for _, st := range catalog {
		if st.ID == id {
			return st, st.IsBookable()
		}
	}
	return domain.ServiceType{}, false
}
