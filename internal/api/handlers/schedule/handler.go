package schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-ResourceBookingService/internal/service/schedule"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/schedule/models"
)

const (
	msgInvalidWorkspaceID = "некорректный ID рабочего пространства"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "расписание не настроено"
)

// Handler обслуживает чтение и замену расписания рабочего пространства
type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/workspaces/{workspaceId}/schedule
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	schedule, err := h.service.Get(r.Context(), workspaceID)
	if err != nil {
		if errors.Is(err, scheduleService.ErrScheduleNotFound) {
			h.logger.Warn("GET /schedule - Schedule not found: workspace_id=%d", workspaceID)
			handlers.RespondNotFound(w, msgScheduleNotFound)
			return
		}
		h.logger.Error("GET /schedule - Failed: workspace_id=%d, error=%v", workspaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - workspace_id=%d", workspaceID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}

// Replace PUT /api/v1/workspaces/{workspaceId}/schedule
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("PUT /schedule - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	var req models.ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.Replace(r.Context(), workspaceID, &req)
	if err != nil {
		if errors.Is(err, scheduleService.ErrInvalidInput) {
			h.logger.Warn("PUT /schedule - Invalid schedule: workspace_id=%d, %v", workspaceID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("PUT /schedule - Failed: workspace_id=%d, error=%v", workspaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /schedule - Schedule replaced: workspace_id=%d, timezone=%s", workspaceID, schedule.Timezone)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
