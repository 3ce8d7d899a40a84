package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/catalog"
	inventoryRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory/models"
)

type MockInventoryRepository struct {
	mock.Mock
}

// Create имитирует вставку: присваивает ID из первого возвращаемого значения
func (m *MockInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	args := m.Called(ctx, item)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	item.ID = int64(args.Int(0))
	return item, nil
}

func (m *MockInventoryRepository) GetByID(ctx context.Context, workspaceID, id int64) (*domain.InventoryItem, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetByIDs(ctx context.Context, workspaceID int64, ids []int64) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, workspaceID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) List(ctx context.Context, workspaceID int64, filter domain.InventoryFilter) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, workspaceID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) UpdateStock(ctx context.Context, item *domain.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, workspaceID, id int64) error {
	return m.Called(ctx, workspaceID, id).Error(0)
}

func (m *MockInventoryRepository) GetRules(ctx context.Context, workspaceID, serviceTypeID int64) ([]domain.ConsumptionRule, error) {
	args := m.Called(ctx, workspaceID, serviceTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsumptionRule), args.Error(1)
}

func (m *MockInventoryRepository) ReplaceRules(ctx context.Context, workspaceID, serviceTypeID int64, rules []domain.ConsumptionRule) error {
	return m.Called(ctx, workspaceID, serviceTypeID, rules).Error(0)
}

type MockServiceTypeRepository struct {
	mock.Mock
}

func (m *MockServiceTypeRepository) GetByID(ctx context.Context, workspaceID, id int64) (*domain.ServiceType, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	ctx = context.Background()
	now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
)

func newService(repo *MockInventoryRepository, st *MockServiceTypeRepository) *Service {
	svc := NewService(repo, st, passthroughTx{}, nopLogger{})
	svc.timeProvider = fixedTime{now}
	return svc
}

func TestService_Restock(t *testing.T) {
	repo := new(MockInventoryRepository)
	svc := newService(repo, new(MockServiceTypeRepository))

	repo.On("GetByID", ctx, int64(1), int64(5)).
		Return(&domain.InventoryItem{ID: 5, WorkspaceID: 1, Quantity: 5, ReorderLevel: 5}, nil)
	repo.On("UpdateStock", ctx, mock.MatchedBy(func(item *domain.InventoryItem) bool {
		return item.Quantity == 15 && item.LastRestocked != nil
	})).Return(nil)

	resp, err := svc.Restock(ctx, 1, 5, 10)

	require.NoError(t, err)
	assert.Equal(t, 15, resp.Quantity)
	assert.Equal(t, string(domain.StockInStock), resp.Status)
	repo.AssertExpectations(t)
}

func TestService_Restock_InvalidAmount(t *testing.T) {
	repo := new(MockInventoryRepository)
	svc := newService(repo, new(MockServiceTypeRepository))

	_, err := svc.Restock(ctx, 1, 5, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidRestockAmount)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Restock_NotFound(t *testing.T) {
	repo := new(MockInventoryRepository)
	svc := newService(repo, new(MockServiceTypeRepository))
	repo.On("GetByID", ctx, int64(1), int64(9)).Return(nil, inventoryRepo.ErrItemNotFound)

	_, err := svc.Restock(ctx, 1, 9, 3)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_Create(t *testing.T) {
	repo := new(MockInventoryRepository)
	svc := newService(repo, new(MockServiceTypeRepository))

	repo.On("Create", ctx, mock.AnythingOfType("*domain.InventoryItem")).
		Return(42, nil)

	resp, err := svc.Create(ctx, 1, &models.CreateItemRequest{Name: "Gloves", Quantity: 5, ReorderLevel: 5, UnitCost: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StockLowStock), resp.Status)
	assert.Equal(t, 10.0, resp.Value)
	require.NotNil(t, resp.LastRestocked)

	_, err = svc.Create(ctx, 1, &models.CreateItemRequest{Name: "Gloves", Quantity: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ValueAndLowStock(t *testing.T) {
	repo := new(MockInventoryRepository)
	svc := newService(repo, new(MockServiceTypeRepository))

	repo.On("List", ctx, int64(1), domain.InventoryFilter{}).Return([]domain.InventoryItem{
		{ID: 1, Quantity: 0, ReorderLevel: 1, UnitCost: 10},
		{ID: 2, Quantity: 3, ReorderLevel: 3, UnitCost: 2},
		{ID: 3, Quantity: 10, ReorderLevel: 3, UnitCost: 1},
	}, nil)

	value, err := svc.Value(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &models.ValueResponse{TotalValue: 16, ItemCount: 3, LowStockCount: 2, OutOfStockCount: 1}, value)

	low, err := svc.LowStock(ctx, 1)
	require.NoError(t, err)
	require.Len(t, low.Items, 2)
	assert.Equal(t, "out-of-stock", low.Items[0].Status)
	assert.Equal(t, "low-stock", low.Items[1].Status)

	out, err := svc.OutOfStock(ctx, 1)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
}

func TestService_ReplaceRules(t *testing.T) {
	repo := new(MockInventoryRepository)
	serviceTypes := new(MockServiceTypeRepository)
	svc := newService(repo, serviceTypes)

	serviceTypes.On("GetByID", ctx, int64(1), int64(3)).Return(&domain.ServiceType{ID: 3}, nil)
	repo.On("GetByIDs", ctx, int64(1), []int64{10, 11}).Return([]domain.InventoryItem{{ID: 10}, {ID: 11}}, nil)
	repo.On("ReplaceRules", ctx, int64(1), int64(3), []domain.ConsumptionRule{
		{ServiceTypeID: 3, InventoryItemID: 10, QuantityPerBooking: 2},
		{ServiceTypeID: 3, InventoryItemID: 11, QuantityPerBooking: 1},
	}).Return(nil)

	resp, err := svc.ReplaceRules(ctx, 1, 3, &models.ConsumptionRulesRequest{Rules: []models.ConsumptionRuleDTO{
		{InventoryItemID: 10, QuantityPerBooking: 2},
		{InventoryItemID: 11, QuantityPerBooking: 1},
	}})

	require.NoError(t, err)
	assert.Len(t, resp.Rules, 2)
	repo.AssertExpectations(t)
}

func TestService_ReplaceRules_Errors(t *testing.T) {
	repo := new(MockInventoryRepository)
	serviceTypes := new(MockServiceTypeRepository)
	svc := newService(repo, serviceTypes)

	_, err := svc.ReplaceRules(ctx, 1, 3, &models.ConsumptionRulesRequest{Rules: []models.ConsumptionRuleDTO{
		{InventoryItemID: 10, QuantityPerBooking: 1},
		{InventoryItemID: 10, QuantityPerBooking: 2},
	}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	serviceTypes.On("GetByID", ctx, int64(1), int64(404)).Return(nil, catalogRepo.ErrServiceTypeNotFound)
	_, err = svc.ReplaceRules(ctx, 1, 404, &models.ConsumptionRulesRequest{})
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)

	serviceTypes.On("GetByID", ctx, int64(1), int64(3)).Return(&domain.ServiceType{ID: 3}, nil)
	repo.On("GetByIDs", ctx, int64(1), []int64{99}).Return([]domain.InventoryItem{}, nil)
	_, err = svc.ReplaceRules(ctx, 1, 3, &models.ConsumptionRulesRequest{Rules: []models.ConsumptionRuleDTO{
		{InventoryItemID: 99, QuantityPerBooking: 1},
	}})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_Update_StatusFollowsQuantityAndReorderLevel(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderLevel int
		wantStatus   domain.StockStatus
		restocked    bool
	}{
		{"quantity raised above reorder level", 20, 5, domain.StockInStock, true},
		{"reorder level raised to quantity", 8, 8, domain.StockLowStock, false},
		{"quantity set to zero", 0, 5, domain.StockOutOfStock, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockInventoryRepository)
			svc := newService(repo, new(MockServiceTypeRepository))

			repo.On("GetByID", ctx, int64(1), int64(5)).
				Return(&domain.InventoryItem{ID: 5, WorkspaceID: 1, Name: "Gloves", Quantity: 8, ReorderLevel: 5}, nil)
			repo.On("Update", ctx, mock.MatchedBy(func(item *domain.InventoryItem) bool {
				return item.Quantity == tt.quantity &&
					item.ReorderLevel == tt.reorderLevel &&
					item.Status() == tt.wantStatus &&
					item.UpdatedAt.Equal(now)
			})).Return(nil)

			resp, err := svc.Update(ctx, 1, 5, &models.UpdateItemRequest{
				Name:         " Nitrile gloves ",
				Quantity:     tt.quantity,
				ReorderLevel: tt.reorderLevel,
				UnitCost:     0.5,
			})

			require.NoError(t, err)
			assert.Equal(t, "Nitrile gloves", resp.Name)
			assert.Equal(t, string(tt.wantStatus), resp.Status)
			assert.Equal(t, tt.restocked, resp.LastRestocked != nil)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Update_Errors(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		repo := new(MockInventoryRepository)
		svc := newService(repo, new(MockServiceTypeRepository))

		_, err := svc.Update(ctx, 1, 5, &models.UpdateItemRequest{Name: "Gloves", Quantity: -1})

		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockInventoryRepository)
		svc := newService(repo, new(MockServiceTypeRepository))
		repo.On("GetByID", ctx, int64(1), int64(5)).Return(nil, inventoryRepo.ErrItemNotFound)

		_, err := svc.Update(ctx, 1, 5, &models.UpdateItemRequest{Name: "Gloves"})

		assert.ErrorIs(t, err, ErrItemNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
