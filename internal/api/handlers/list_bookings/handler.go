package list_bookings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	bookingsService "github.com/m04kA/SMC-ResourceBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/bookings/models"
)

const (
	msgInvalidWorkspaceID = "некорректный ID рабочего пространства"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter      = "некорректный фильтр: view может быть all, upcoming или today, status - известный статус"
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

// Handle GET /api/v1/workspaces/{workspaceId}/bookings
// Query params: view (all|upcoming|today), status, q, date (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	query := r.URL.Query()
	date, err := handlers.ParseOptionalDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.ListBookingsRequest{
		WorkspaceID: workspaceID,
		View:        query.Get("view"),
		Status:      optional(query.Get("status")),
		Query:       optional(query.Get("q")),
		Date:        date,
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: workspace_id=%d, error=%v", workspaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: workspace_id=%d, count=%d",
		workspaceID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
