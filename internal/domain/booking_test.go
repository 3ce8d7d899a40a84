package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			expected := false
			for _, a := range allowed[from] {
				if a == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusNoShow.IsValid())
	assert.False(t, BookingStatus("in_progress").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBookingStatus_NextStatusesReturnsCopy(t *testing.T) {
	next := StatusPending.NextStatuses()
	next[0] = StatusNoShow
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
}

func TestTimeSlot_Overlaps(t *testing.T) {
	slot := func(start, end int) TimeSlot {
		return TimeSlot{Start: types.MustFromMinutes(start), End: types.MustFromMinutes(end)}
	}

	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{"identical", slot(540, 570), slot(540, 570), true},
		{"partial", slot(540, 600), slot(570, 630), true},
		{"contained", slot(540, 660), slot(570, 600), true},
		{"touching end", slot(540, 570), slot(570, 600), false},
		{"touching start", slot(570, 600), slot(540, 570), false},
		{"disjoint", slot(540, 570), slot(600, 630), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
		})
	}
}

func TestOperatingHours_IntervalsFor(t *testing.T) {
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	hours := OperatingHours{
		time.Monday: {
			{Start: "13:00", End: "17:00"},
			{Start: "09:00", End: "12:00"},
		},
	}

	got := hours.IntervalsFor(monday)
	assert.Equal(t, []Interval{{Start: "09:00", End: "12:00"}, {Start: "13:00", End: "17:00"}}, got)
	// исходный порядок не меняется
	assert.Equal(t, types.TimeString("13:00"), hours[time.Monday][0].Start)

	assert.Empty(t, hours.IntervalsFor(monday.AddDate(0, 0, 1)))
}

func TestWorkspaceSchedule_Today(t *testing.T) {
	s := WorkspaceSchedule{Timezone: "Asia/Tokyo"}
	now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), s.Today(now))

	s.Timezone = "Not/AZone"
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), s.Today(now))
}

func TestWorkspaceSchedule_Granularity(t *testing.T) {
	assert.Equal(t, DefaultSlotGranularityMinutes, (&WorkspaceSchedule{}).Granularity())
	assert.Equal(t, 15, (&WorkspaceSchedule{SlotGranularityMinutes: 15}).Granularity())
}

func TestServiceType_PriceSnapshot(t *testing.T) {
	price := 49.5
	assert.Equal(t, 49.5, (&ServiceType{Price: &price}).PriceSnapshot())
	assert.Equal(t, 0.0, (&ServiceType{}).PriceSnapshot())
}
