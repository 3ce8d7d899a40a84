package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// validateSchedule проверяет часовой пояс, шаг слотов и интервалы каждого дня
// Интервалы каждого дня сортируются по началу
func validateSchedule(s *domain.WorkspaceSchedule) error {
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, s.Timezone)
	}

	if s.SlotGranularityMinutes < domain.MinSlotGranularity || s.SlotGranularityMinutes > domain.MaxSlotGranularity {
		return fmt.Errorf("%w: slot granularity must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotGranularity, domain.MaxSlotGranularity)
	}

	for day, intervals := range s.Hours {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: unknown weekday %d", ErrInvalidInput, day)
		}

		sort.Slice(intervals, func(i, j int) bool {
			return intervals[i].Start.Minutes() < intervals[j].Start.Minutes()
		})

		for i, iv := range intervals {
			start, end := iv.Start.Minutes(), iv.End.Minutes()
			if start < 0 || end < 0 {
				return fmt.Errorf("%w: %s: malformed interval %s-%s", ErrInvalidInput, day, iv.Start, iv.End)
			}
			if start >= end {
				return fmt.Errorf("%w: %s: interval %s-%s must start before it ends", ErrInvalidInput, day, iv.Start, iv.End)
			}
			if end > domain.MinutesPerDay {
				return fmt.Errorf("%w: %s: interval %s-%s exceeds the day", ErrInvalidInput, day, iv.Start, iv.End)
			}
			if i > 0 && start < intervals[i-1].End.Minutes() {
				return fmt.Errorf("%w: %s: interval %s-%s overlaps %s-%s", ErrInvalidInput, day,
					iv.Start, iv.End, intervals[i-1].Start, intervals[i-1].End)
			}
		}
		s.Hours[day] = intervals
	}

	return nil
}
