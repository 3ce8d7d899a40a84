package domain

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

// Interval is an open period within a day, [Start, End)
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Contains returns true if the slot fits entirely inside the interval
func (i Interval) Contains(slot TimeSlot) bool {
	return i.Start.Minutes() <= slot.Start.Minutes() && slot.End.Minutes() <= i.End.Minutes()
}

// OperatingHours maps a weekday to its open intervals. A missing weekday is closed.
type OperatingHours map[time.Weekday][]Interval

// IntervalsFor returns the open intervals of date's weekday sorted by start
func (h OperatingHours) IntervalsFor(date time.Time) []Interval {
	src := h[date.Weekday()]
	if len(src) == 0 {
		return nil
	}
	out := make([]Interval, len(src))
	copy(out, src)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Minutes() < out[j].Start.Minutes()
	})
	return out
}

// WorkspaceSchedule is the per-workspace booking configuration
type WorkspaceSchedule struct {
	WorkspaceID            int64
	Timezone               string
	SlotGranularityMinutes int
	Hours                  OperatingHours
	UpdatedAt              time.Time
}

// Location returns the workspace timezone, UTC if it is empty or unknown
func (s *WorkspaceSchedule) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Granularity returns the slot step, falling back to the default
func (s *WorkspaceSchedule) Granularity() int {
	if s.SlotGranularityMinutes <= 0 {
		return DefaultSlotGranularityMinutes
	}
	return s.SlotGranularityMinutes
}

// Today returns the workspace's current calendar day
func (s *WorkspaceSchedule) Today(now time.Time) time.Time {
	return DateOf(now.In(s.Location()))
}

// DateOf drops the clock part of t, keeping its calendar fields, as UTC midnight
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay compares calendar fields only
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
