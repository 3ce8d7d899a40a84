package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/ptr"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

var (
	monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	now    = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
)

func fixture() ([]domain.ServiceType, domain.WorkspaceSchedule) {
	catalog := []domain.ServiceType{
		{ID: 1, Name: "Consultation", DurationMinutes: 30, Capacity: 1, Price: ptr.Ptr(40.0), IsActive: true},
		{ID: 2, Name: "Retired", DurationMinutes: 30, Capacity: 1, IsActive: false},
	}
	schedule := domain.WorkspaceSchedule{
		WorkspaceID: 7,
		Timezone:    "UTC",
		Hours: domain.OperatingHours{
			time.Monday: {{Start: "09:00", End: "17:00"}},
		},
	}
	return catalog, schedule
}

func validInput() Input {
	return Input{
		WorkspaceID:   7,
		ServiceTypeID: 1,
		Date:          monday,
		StartTime:     "09:00",
		Customer:      domain.Customer{Name: "Jane Doe", Email: "jane@example.com"},
	}
}

func TestRequestBooking_Success(t *testing.T) {
	catalog, schedule := fixture()

	b, err := RequestBooking(validInput(), catalog, schedule, nil, now)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, types.TimeString("09:00"), b.Slot.Start)
	assert.Equal(t, types.TimeString("09:30"), b.Slot.End)
	assert.Equal(t, 40.0, b.TotalPrice)
	assert.Equal(t, "Consultation", b.ServiceName)
	assert.Equal(t, int64(7), b.WorkspaceID)
	assert.Equal(t, monday, b.Date)
	assert.Equal(t, now, b.CreatedAt)
	assert.Zero(t, b.ID)
}

func TestRequestBooking_SlotTakenAtCapacity(t *testing.T) {
	catalog, schedule := fixture()
	existing := []domain.Booking{{
		ServiceTypeID: 1,
		Date:          monday,
		Slot:          domain.TimeSlot{Start: "09:00", End: "09:30"},
		Status:        domain.StatusConfirmed,
	}}

	_, err := RequestBooking(validInput(), catalog, schedule, existing, now)

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestRequestBooking_Failures(t *testing.T) {
	catalog, schedule := fixture()

	tests := []struct {
		name   string
		modify func(in *Input)
		want   error
	}{
		{"unknown service", func(in *Input) { in.ServiceTypeID = 99 }, domain.ErrUnknownService},
		{"inactive service", func(in *Input) { in.ServiceTypeID = 2 }, domain.ErrUnknownService},
		{"date in past", func(in *Input) { in.Date = now.AddDate(0, 0, -1) }, domain.ErrDateInPast},
		{"closed day", func(in *Input) { in.Date = monday.AddDate(0, 0, 1) }, domain.ErrSlotUnavailable},
		{"before opening", func(in *Input) { in.StartTime = "08:30" }, domain.ErrSlotUnavailable},
		{"ends after closing", func(in *Input) { in.StartTime = "16:45" }, domain.ErrSlotUnavailable},
		{"off granularity", func(in *Input) { in.StartTime = "09:10" }, domain.ErrSlotUnavailable},
		{"missing name", func(in *Input) { in.Customer.Name = "  " }, domain.ErrInvalidContact},
		{"missing email", func(in *Input) { in.Customer.Email = "" }, domain.ErrInvalidContact},
		{"malformed email", func(in *Input) { in.Customer.Email = "jane@localhost" }, domain.ErrInvalidContact},
		{"name too long", func(in *Input) { in.Customer.Name = strings.Repeat("я", domain.MaxNameLength+1) }, domain.ErrInvalidContact},
		{"email too long", func(in *Input) { in.Customer.Email = strings.Repeat("a", domain.MaxEmailLength) + "@example.com" }, domain.ErrInvalidContact},
		{"phone too long", func(in *Input) { in.Customer.Phone = ptr.Ptr(strings.Repeat("1", domain.MaxPhoneLength+1)) }, domain.ErrInvalidContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)

			_, err := RequestBooking(in, catalog, schedule, nil, now)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequestBooking_CheckOrder(t *testing.T) {
	catalog, schedule := fixture()
	in := validInput()
	in.Date = now.AddDate(0, 0, -3)
	in.Customer.Email = "broken"

	_, err := RequestBooking(in, catalog, schedule, nil, now)
	assert.ErrorIs(t, err, domain.ErrDateInPast)

	in.ServiceTypeID = 99
	_, err = RequestBooking(in, catalog, schedule, nil, now)
	assert.ErrorIs(t, err, domain.ErrUnknownService)
}

func TestRequestBooking_TodayIsAllowed(t *testing.T) {
	catalog, schedule := fixture()
	in := validInput()
	mondayNoon := monday.Add(12 * time.Hour)

	_, err := RequestBooking(in, catalog, schedule, nil, mondayNoon)
	assert.NoError(t, err)
}

func TestRequestBooking_UsesWorkspaceTimezone(t *testing.T) {
	catalog, schedule := fixture()
	schedule.Timezone = "Pacific/Kiritimati" // UTC+14
	lateSunday := time.Date(2026, 10, 18, 11, 0, 0, 0, time.UTC)

	in := validInput()
	in.Date = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	_, err := RequestBooking(in, catalog, schedule, nil, lateSunday)
	assert.ErrorIs(t, err, domain.ErrDateInPast)
}

func TestRequestBooking_NormalizesContact(t *testing.T) {
	catalog, schedule := fixture()
	in := validInput()
	in.Customer = domain.Customer{Name: " Jane ", Email: " jane@example.com ", Phone: ptr.Ptr("  ")}

	b, err := RequestBooking(in, catalog, schedule, nil, now)

	require.NoError(t, err)
	assert.Equal(t, "Jane", b.Customer.Name)
	assert.Equal(t, "jane@example.com", b.Customer.Email)
	assert.Nil(t, b.Customer.Phone)
}

func TestRequestBooking_NoPriceSnapshotsZero(t *testing.T) {
	catalog, schedule := fixture()
	catalog[0].Price = nil

	b, err := RequestBooking(validInput(), catalog, schedule, nil, now)

	require.NoError(t, err)
	assert.Equal(t, 0.0, b.TotalPrice)
}
