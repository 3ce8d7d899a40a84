package get_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-ResourceBookingService/internal/service/bookings"
)

const (
	msgInvalidWorkspaceID = "некорректный ID рабочего пространства"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workspaces/{workspaceId}/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	bookingID, err := handlers.ParseIDVar(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), workspaceID, bookingID)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/{id} - Booking not found: workspace_id=%d, booking_id=%d", workspaceID, bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
