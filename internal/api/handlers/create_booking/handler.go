package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidWorkspaceID = "некорректный ID рабочего пространства"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUnknownService     = "услуга не найдена или недоступна"
	msgDateInPast         = "дата бронирования уже прошла"
	msgSlotUnavailable    = "выбранный временной слот недоступен"
	msgInvalidContact     = "укажите имя и корректный email"
)

var (
	errInvalidDate = errors.New("invalid booking date")
	errInvalidTime = errors.New("invalid start time")
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/workspaces/{workspaceId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(workspaceID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: workspace_id=%d, service_type_id=%d", workspaceID, req.ServiceTypeID)
			handlers.RespondNotFound(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: workspace_id=%d, date=%s", workspaceID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: workspace_id=%d, date=%s, time=%s",
				workspaceID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrInvalidContact):
			h.logger.Warn("POST /bookings - Invalid contact: workspace_id=%d", workspaceID)
			handlers.RespondUnprocessable(w, msgInvalidContact)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: workspace_id=%d, error=%v", workspaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, workspace_id=%d",
		result.ID, workspaceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
