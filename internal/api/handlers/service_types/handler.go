package service_types

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	catalogService "github.com/m04kA/SMC-ResourceBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/catalog/models"
)

const (
	msgInvalidWorkspaceID   = "некорректный ID рабочего пространства"
	msgInvalidServiceTypeID = "некорректный ID типа услуги"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgServiceTypeNotFound  = "тип услуги не найден"
	msgServiceTypeInUse     = "на тип услуги есть бронирования, его можно только деактивировать"
)

// Handler CRUD каталога типов услуг
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/workspaces/{workspaceId}/service-types?active=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("GET /service-types - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	onlyActive := r.URL.Query().Get("active") == "true"

	list, err := h.service.List(r.Context(), workspaceID, onlyActive)
	if err != nil {
		h.logger.Error("GET /service-types - Failed: workspace_id=%d, error=%v", workspaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /service-types - workspace_id=%d, count=%d", workspaceID, len(list.ServiceTypes))
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Create POST /api/v1/workspaces/{workspaceId}/service-types
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("POST /service-types - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	var req models.ServiceTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /service-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	st, err := h.service.Create(r.Context(), workspaceID, &req)
	if err != nil {
		h.respondError(w, "POST /service-types", 0, err)
		return
	}

	h.logger.Info("POST /service-types - Created: workspace_id=%d, service_type_id=%d", workspaceID, st.ID)
	handlers.RespondJSON(w, http.StatusCreated, st)
}

// Get GET /api/v1/workspaces/{workspaceId}/service-types/{serviceTypeId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, id, ok := h.parseIDs(w, r, "GET /service-types/{id}")
	if !ok {
		return
	}

	st, err := h.service.GetByID(r.Context(), workspaceID, id)
	if err != nil {
		h.respondError(w, "GET /service-types/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, st)
}

// Update PUT /api/v1/workspaces/{workspaceId}/service-types/{serviceTypeId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, id, ok := h.parseIDs(w, r, "PUT /service-types/{id}")
	if !ok {
		return
	}

	var req models.ServiceTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /service-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	st, err := h.service.Update(r.Context(), workspaceID, id, &req)
	if err != nil {
		h.respondError(w, "PUT /service-types/{id}", id, err)
		return
	}

	h.logger.Info("PUT /service-types/{id} - Updated: service_type_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, st)
}

// Deactivate PATCH /api/v1/workspaces/{workspaceId}/service-types/{serviceTypeId}/deactivate
// Тип услуги не удаляется физически, бронирования продолжают на него ссылаться
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	workspaceID, id, ok := h.parseIDs(w, r, "PATCH /service-types/{id}/deactivate")
	if !ok {
		return
	}

	if err := h.service.Deactivate(r.Context(), workspaceID, id); err != nil {
		h.respondError(w, "PATCH /service-types/{id}/deactivate", id, err)
		return
	}

	h.logger.Info("PATCH /service-types/{id}/deactivate - Deactivated: service_type_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) parseIDs(w http.ResponseWriter, r *http.Request, op string) (int64, int64, bool) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("%s - Invalid workspace ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return 0, 0, false
	}

	id, err := handlers.ParseIDVar(r, "serviceTypeId")
	if err != nil {
		h.logger.Warn("%s - Invalid service type ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return 0, 0, false
	}

	return workspaceID, id, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	switch {
	case errors.Is(err, catalogService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, catalogService.ErrServiceTypeNotFound):
		h.logger.Warn("%s - Service type not found: service_type_id=%d", op, id)
		handlers.RespondNotFound(w, msgServiceTypeNotFound)

	case errors.Is(err, catalogService.ErrServiceTypeInUse):
		h.logger.Warn("%s - Service type in use: service_type_id=%d", op, id)
		handlers.RespondConflict(w, msgServiceTypeInUse)

	default:
		h.logger.Error("%s - Failed: service_type_id=%d, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
