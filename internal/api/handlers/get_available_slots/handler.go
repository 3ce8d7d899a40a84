package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidWorkspaceID   = "некорректный ID рабочего пространства"
	msgInvalidServiceTypeID = "некорректный ID типа услуги"
	msgMissingDate          = "дата обязательна"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownService       = "услуга не найдена или недоступна"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workspaces/{workspaceId}/service-types/{serviceTypeId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	serviceTypeID, err := handlers.ParseIDVar(r, "serviceTypeId")
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid service type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		WorkspaceID:   workspaceID,
		ServiceTypeID: serviceTypeID,
		Date:          date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrUnknownService):
			h.logger.Warn("GET /available-slots - Unknown service: workspace_id=%d, service_type_id=%d",
				workspaceID, serviceTypeID)
			handlers.RespondNotFound(w, msgUnknownService)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: workspace_id=%d, service_type_id=%d, error=%v",
				workspaceID, serviceTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: workspace_id=%d, service_type_id=%d, slots_count=%d",
		workspaceID, serviceTypeID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
