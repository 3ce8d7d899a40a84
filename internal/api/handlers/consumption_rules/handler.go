package consumption_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	inventoryService "github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory/models"
)

const (
	msgInvalidWorkspaceID   = "некорректный ID рабочего пространства"
	msgInvalidServiceTypeID = "некорректный ID типа услуги"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgServiceTypeNotFound  = "тип услуги не найден"
	msgItemNotFound         = "позиция склада из правила не найдена"
)

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/workspaces/{workspaceId}/service-types/{serviceTypeId}/consumption-rules
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, serviceTypeID, ok := h.parseIDs(w, r, "GET /consumption-rules")
	if !ok {
		return
	}

	rules, err := h.service.GetRules(r.Context(), workspaceID, serviceTypeID)
	if err != nil {
		h.respondError(w, "GET /consumption-rules", serviceTypeID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rules)
}

// Replace PUT /api/v1/workspaces/{workspaceId}/service-types/{serviceTypeId}/consumption-rules
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	workspaceID, serviceTypeID, ok := h.parseIDs(w, r, "PUT /consumption-rules")
	if !ok {
		return
	}

	var req models.ConsumptionRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /consumption-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rules, err := h.service.ReplaceRules(r.Context(), workspaceID, serviceTypeID, &req)
	if err != nil {
		h.respondError(w, "PUT /consumption-rules", serviceTypeID, err)
		return
	}

	h.logger.Info("PUT /consumption-rules - service_type_id=%d, rules=%d", serviceTypeID, len(rules.Rules))
	handlers.RespondJSON(w, http.StatusOK, rules)
}

func (h *Handler) parseIDs(w http.ResponseWriter, r *http.Request, op string) (int64, int64, bool) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("%s - Invalid workspace ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return 0, 0, false
	}

	serviceTypeID, err := handlers.ParseIDVar(r, "serviceTypeId")
	if err != nil {
		h.logger.Warn("%s - Invalid service type ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return 0, 0, false
	}

	return workspaceID, serviceTypeID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, serviceTypeID int64, err error) {
	switch {
	case errors.Is(err, inventoryService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, inventoryService.ErrServiceTypeNotFound):
		h.logger.Warn("%s - Service type not found: service_type_id=%d", op, serviceTypeID)
		handlers.RespondNotFound(w, msgServiceTypeNotFound)

	case errors.Is(err, inventoryService.ErrItemNotFound):
		h.logger.Warn("%s - Rule item not found: service_type_id=%d, %v", op, serviceTypeID, err)
		handlers.RespondUnprocessable(w, msgItemNotFound)

	default:
		h.logger.Error("%s - Failed: service_type_id=%d, error=%v", op, serviceTypeID, err)
		handlers.RespondInternalError(w)
	}
}
