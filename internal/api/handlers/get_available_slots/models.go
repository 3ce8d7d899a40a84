package get_available_slots

import (
	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	WorkspaceID     int64          `json:"workspaceId"`
	ServiceTypeID   int64          `json:"serviceTypeId"`
	ServiceName     string         `json:"serviceName"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Capacity        int            `json:"capacity"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:      s.StartTime.String(),
			EndTime:        s.EndTime.String(),
			AvailableSpots: s.AvailableSpots,
			TotalSpots:     s.TotalSpots,
		})
	}

	return &AvailableSlotsResponse{
		WorkspaceID:     resp.WorkspaceID,
		ServiceTypeID:   resp.ServiceTypeID,
		ServiceName:     resp.ServiceName,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Capacity:        resp.Capacity,
		Slots:           slots,
	}
}
