package update_booking_status

import (
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/bookings/models"
	updateStatus "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/update_booking_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StockWarning нехватка расходника при завершении
type StockWarning struct {
	InventoryItemID int64  `json:"inventoryItemId"`
	ItemName        string `json:"itemName,omitempty"`
	Required        int    `json:"required"`
	Available       int    `json:"available"`
	Message         string `json:"message"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Booking        *models.BookingResponse `json:"booking"`
	PreviousStatus string                  `json:"previousStatus"`
	Warnings       []StockWarning          `json:"warnings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	warnings := make([]StockWarning, 0, len(resp.Warnings))
	for _, s := range resp.Warnings {
		warnings = append(warnings, StockWarning{
			InventoryItemID: s.ItemID,
			ItemName:        s.ItemName,
			Required:        s.Required,
			Available:       s.Available,
			Message:         s.Error(),
		})
	}

	return &UpdateStatusResponse{
		Booking:        models.FromDomainBooking(&resp.Booking),
		PreviousStatus: string(resp.PreviousStatus),
		Warnings:       warnings,
	}
}
