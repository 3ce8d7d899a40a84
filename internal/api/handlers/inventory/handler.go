package inventory

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	inventoryService "github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory/models"
)

const (
	msgInvalidWorkspaceID = "некорректный ID рабочего пространства"
	msgInvalidItemID      = "некорректный ID позиции"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgItemNotFound       = "позиция склада не найдена"
	msgInvalidRestock     = "количество пополнения должно быть положительным"
)

// Handler складские позиции рабочего пространства
type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/workspaces/{workspaceId}/inventory?q=&category=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("GET /inventory - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	query := r.URL.Query()
	req := &models.ListItemsRequest{WorkspaceID: workspaceID}
	if q := query.Get("q"); q != "" {
		req.Query = &q
	}
	if c := query.Get("category"); c != "" {
		req.Category = &c
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /inventory - Failed: workspace_id=%d, error=%v", workspaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /inventory - workspace_id=%d, count=%d", workspaceID, len(list.Items))
	handlers.RespondJSON(w, http.StatusOK, list)
}

// LowStock GET /api/v1/workspaces/{workspaceId}/inventory/low-stock
func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	h.stockList(w, r, "GET /inventory/low-stock", h.service.LowStock)
}

// OutOfStock GET /api/v1/workspaces/{workspaceId}/inventory/out-of-stock
func (h *Handler) OutOfStock(w http.ResponseWriter, r *http.Request) {
	h.stockList(w, r, "GET /inventory/out-of-stock", h.service.OutOfStock)
}

func (h *Handler) stockList(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fetch func(ctx context.Context, workspaceID int64) (*models.ItemListResponse, error),
) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("%s - Invalid workspace ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	list, err := fetch(r.Context(), workspaceID)
	if err != nil {
		h.logger.Error("%s - Failed: workspace_id=%d, error=%v", op, workspaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - workspace_id=%d, count=%d", op, workspaceID, len(list.Items))
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Value GET /api/v1/workspaces/{workspaceId}/inventory/value
func (h *Handler) Value(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("GET /inventory/value - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	value, err := h.service.Value(r.Context(), workspaceID)
	if err != nil {
		h.logger.Error("GET /inventory/value - Failed: workspace_id=%d, error=%v", workspaceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, value)
}

// Create POST /api/v1/workspaces/{workspaceId}/inventory
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("POST /inventory - Invalid workspace ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return
	}

	var req models.CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Create(r.Context(), workspaceID, &req)
	if err != nil {
		h.respondError(w, "POST /inventory", 0, err)
		return
	}

	h.logger.Info("POST /inventory - Created: workspace_id=%d, item_id=%d", workspaceID, item.ID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}

// Get GET /api/v1/workspaces/{workspaceId}/inventory/{itemId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, id, ok := h.parseIDs(w, r, "GET /inventory/{id}")
	if !ok {
		return
	}

	item, err := h.service.GetByID(r.Context(), workspaceID, id)
	if err != nil {
		h.respondError(w, "GET /inventory/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}

// Update PUT /api/v1/workspaces/{workspaceId}/inventory/{itemId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, id, ok := h.parseIDs(w, r, "PUT /inventory/{id}")
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /inventory/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Update(r.Context(), workspaceID, id, &req)
	if err != nil {
		h.respondError(w, "PUT /inventory/{id}", id, err)
		return
	}

	h.logger.Info("PUT /inventory/{id} - Updated: item_id=%d, status=%s", id, item.Status)
	handlers.RespondJSON(w, http.StatusOK, item)
}

// Restock POST /api/v1/workspaces/{workspaceId}/inventory/{itemId}/restock
func (h *Handler) Restock(w http.ResponseWriter, r *http.Request) {
	workspaceID, id, ok := h.parseIDs(w, r, "POST /inventory/{id}/restock")
	if !ok {
		return
	}

	var req RestockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory/{id}/restock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Restock(r.Context(), workspaceID, id, req.Amount)
	if err != nil {
		h.respondError(w, "POST /inventory/{id}/restock", id, err)
		return
	}

	h.logger.Info("POST /inventory/{id}/restock - item_id=%d, amount=%d, quantity=%d", id, req.Amount, item.Quantity)
	handlers.RespondJSON(w, http.StatusOK, item)
}

// Delete DELETE /api/v1/workspaces/{workspaceId}/inventory/{itemId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, id, ok := h.parseIDs(w, r, "DELETE /inventory/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), workspaceID, id); err != nil {
		h.respondError(w, "DELETE /inventory/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /inventory/{id} - Deleted: item_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) parseIDs(w http.ResponseWriter, r *http.Request, op string) (int64, int64, bool) {
	workspaceID, err := handlers.ParseIDVar(r, "workspaceId")
	if err != nil {
		h.logger.Warn("%s - Invalid workspace ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidWorkspaceID)
		return 0, 0, false
	}

	id, err := handlers.ParseIDVar(r, "itemId")
	if err != nil {
		h.logger.Warn("%s - Invalid item ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return 0, 0, false
	}

	return workspaceID, id, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	switch {
	case errors.Is(err, inventoryService.ErrInvalidRestockAmount):
		h.logger.Warn("%s - Invalid restock amount: item_id=%d", op, id)
		handlers.RespondBadRequest(w, msgInvalidRestock)

	case errors.Is(err, inventoryService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, inventoryService.ErrItemNotFound):
		h.logger.Warn("%s - Item not found: item_id=%d", op, id)
		handlers.RespondNotFound(w, msgItemNotFound)

	default:
		h.logger.Error("%s - Failed: item_id=%d, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
