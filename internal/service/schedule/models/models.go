package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

// Interval интервал работы "HH:MM" - "HH:MM"
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleRequest полное расписание рабочего пространства
// Ключи Hours - дни недели на английском в нижнем регистре ("monday"), отсутствующий день - выходной
type ScheduleRequest struct {
	Timezone               string                `json:"timezone"`
	SlotGranularityMinutes int                   `json:"slotGranularityMinutes"`
	Hours                  map[string][]Interval `json:"hours"`
}

// ScheduleResponse ответ с расписанием
type ScheduleResponse struct {
	WorkspaceID            int64                 `json:"workspaceId"`
	Timezone               string                `json:"timezone"`
	SlotGranularityMinutes int                   `json:"slotGranularityMinutes"`
	Hours                  map[string][]Interval `json:"hours"`
	UpdatedAt              time.Time             `json:"updatedAt"`
}

// ParseWeekday конвертирует название дня недели в time.Weekday
func ParseWeekday(name string) (time.Weekday, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == lower {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// ToDomainHours конвертирует расписание из DTO, проверяя формат дней и времени
func (r *ScheduleRequest) ToDomainHours() (domain.OperatingHours, error) {
	hours := make(domain.OperatingHours, len(r.Hours))
	for dayName, intervals := range r.Hours {
		day, err := ParseWeekday(dayName)
		if err != nil {
			return nil, err
		}
		for _, iv := range intervals {
			start, err := types.NewTimeStringFromString(iv.Start)
			if err != nil {
				return nil, fmt.Errorf("%s: start: %w", dayName, err)
			}
			end, err := types.NewTimeStringFromString(iv.End)
			if err != nil {
				return nil, fmt.Errorf("%s: end: %w", dayName, err)
			}
			hours[day] = append(hours[day], domain.Interval{Start: start, End: end})
		}
	}
	return hours, nil
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(s *domain.WorkspaceSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		WorkspaceID:            s.WorkspaceID,
		Timezone:               s.Timezone,
		SlotGranularityMinutes: s.SlotGranularityMinutes,
		Hours:                  make(map[string][]Interval, len(s.Hours)),
		UpdatedAt:              s.UpdatedAt,
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		intervals := s.Hours.IntervalsFor(dayDate(day))
		if len(intervals) == 0 {
			continue
		}
		dto := make([]Interval, 0, len(intervals))
		for _, iv := range intervals {
			dto = append(dto, Interval{Start: iv.Start.String(), End: iv.End.String()})
		}
		resp.Hours[strings.ToLower(day.String())] = dto
	}
	return resp
}

// dayDate возвращает любую дату с заданным днем недели (4 января 1970 - воскресенье)
func dayDate(day time.Weekday) time.Time {
	return time.Date(1970, 1, 4+int(day), 0, 0, 0, 0, time.UTC)
}
