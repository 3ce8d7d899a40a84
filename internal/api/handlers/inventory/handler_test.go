package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	inventoryService "github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory/models"
)

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Create(ctx context.Context, workspaceID int64, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	args := m.Called(ctx, workspaceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemResponse), args.Error(1)
}

func (m *MockInventoryService) GetByID(ctx context.Context, workspaceID, id int64) (*models.ItemResponse, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemResponse), args.Error(1)
}

func (m *MockInventoryService) List(ctx context.Context, req *models.ListItemsRequest) (*models.ItemListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemListResponse), args.Error(1)
}

func (m *MockInventoryService) LowStock(ctx context.Context, workspaceID int64) (*models.ItemListResponse, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemListResponse), args.Error(1)
}

func (m *MockInventoryService) OutOfStock(ctx context.Context, workspaceID int64) (*models.ItemListResponse, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemListResponse), args.Error(1)
}

func (m *MockInventoryService) Value(ctx context.Context, workspaceID int64) (*models.ValueResponse, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ValueResponse), args.Error(1)
}

func (m *MockInventoryService) Update(ctx context.Context, workspaceID, id int64, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	args := m.Called(ctx, workspaceID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemResponse), args.Error(1)
}

func (m *MockInventoryService) Restock(ctx context.Context, workspaceID, id int64, amount int) (*models.ItemResponse, error) {
	args := m.Called(ctx, workspaceID, id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemResponse), args.Error(1)
}

func (m *MockInventoryService) Delete(ctx context.Context, workspaceID, id int64) error {
	args := m.Called(ctx, workspaceID, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func restock(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/restock", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"workspaceId": "1", "itemId": "5"})
	rec := httptest.NewRecorder()
	h.Restock(rec, req)
	return rec
}

func TestRestock_Success(t *testing.T) {
	svc := new(MockInventoryService)
	h := NewHandler(svc, nopLogger{})

	svc.On("Restock", mock.Anything, int64(1), int64(5), 10).
		Return(&models.ItemResponse{ID: 5, Quantity: 12, Status: "in_stock"}, nil)

	rec := restock(h, `{"amount":10}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 12, body.Quantity)
	svc.AssertExpectations(t)
}

func TestRestock_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: amount=0", inventoryService.ErrInvalidRestockAmount), http.StatusBadRequest},
		{inventoryService.ErrItemNotFound, http.StatusNotFound},
		{inventoryService.ErrInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		svc := new(MockInventoryService)
		svc.On("Restock", mock.Anything, int64(1), int64(5), mock.Anything).Return(nil, tc.err)

		rec := restock(NewHandler(svc, nopLogger{}), `{"amount":0}`)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestRestock_InvalidItemID(t *testing.T) {
	svc := new(MockInventoryService)
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/restock", strings.NewReader(`{"amount":1}`))
	req = mux.SetURLVars(req, map[string]string{"workspaceId": "1", "itemId": "abc"})
	rec := httptest.NewRecorder()
	h.Restock(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Restock")
}

func TestList_PassesFilters(t *testing.T) {
	svc := new(MockInventoryService)
	h := NewHandler(svc, nopLogger{})

	svc.On("List", mock.Anything, mock.MatchedBy(func(r *models.ListItemsRequest) bool {
		return r.WorkspaceID == 1 && r.Query != nil && *r.Query == "glove" && r.Category == nil
	})).Return(&models.ItemListResponse{Items: []models.ItemResponse{{ID: 5}}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/inventory?q=glove", nil)
	req = mux.SetURLVars(req, map[string]string{"workspaceId": "1"})
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdate(t *testing.T) {
	svc := new(MockInventoryService)
	h := NewHandler(svc, nopLogger{})

	svc.On("Update", mock.Anything, int64(1), int64(5), mock.MatchedBy(func(r *models.UpdateItemRequest) bool {
		return r.Name == "Gloves" && r.Quantity == 3 && r.ReorderLevel == 5
	})).Return(&models.ItemResponse{ID: 5, Quantity: 3, ReorderLevel: 5, Status: "low-stock"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/inventory/5",
		strings.NewReader(`{"name":"Gloves","quantity":3,"reorderLevel":5,"unitCost":1.5}`))
	req = mux.SetURLVars(req, map[string]string{"workspaceId": "1", "itemId": "5"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "low-stock", body.Status)
	svc.AssertExpectations(t)
}
