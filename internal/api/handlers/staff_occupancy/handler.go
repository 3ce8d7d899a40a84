package staff_occupancy

import (
	"net/http"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
)

const (
	msgInvalidWorkspaceID = "некорректный ID рабочего пространства"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/workspaces/{workspaceId}/staff-occupancy?date=YYYY-MM-DD
// Без date берется текущий день рабочего пространства
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("GET /staff-occupancy - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	date, err := handlers.ParseOptionalDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff-occupancy - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.StaffOccupancy(r.Context(), workspaceID, date)
	if err != nil {
		h.logger.Error("GET /staff-occupancy - Failed: workspace_id=%d, error=%v", workspaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff-occupancy - workspace_id=%d, date=%s, staff=%d", workspaceID, result.Date, len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}
