package get_booking_stats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	getStats "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/get_booking_stats"
)

const (
	msgInvalidWorkspaceID = "некорректный ID рабочего пространства"
	msgInvalidFrom        = "некорректная дата начала, ожидается YYYY-MM-DD"
	msgInvalidDays        = "некорректная длина периода"
)

type Handler struct {
	useCase GetBookingStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workspaces/{workspaceId}/bookings-stats?from=YYYY-MM-DD&days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("GET /bookings-stats - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	query := r.URL.Query()

	from, err := handlers.ParseOptionalDate(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /bookings-stats - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	days := 0
	if raw := query.Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /bookings-stats - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getStats.Request{
		WorkspaceID: workspaceID,
		From:        from,
		Days:        days,
	})
	if err != nil {
		if errors.Is(err, getStats.ErrInvalidInput) {
			h.logger.Warn("GET /bookings-stats - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		h.logger.Error("GET /bookings-stats - Failed: workspace_id=%d, error=%v", workspaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings-stats - workspace_id=%d, total=%d", workspaceID, result.Summary.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
