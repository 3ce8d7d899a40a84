package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/catalog/models"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/ptr"
)

type MockServiceTypeRepository struct {
	mock.Mock
}

func (m *MockServiceTypeRepository) Create(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error) {
	args := m.Called(ctx, st)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) GetByID(ctx context.Context, workspaceID, id int64) (*domain.ServiceType, error) {
	args := m.Called(ctx, workspaceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) List(ctx context.Context, workspaceID int64, onlyActive bool) ([]domain.ServiceType, error) {
	args := m.Called(ctx, workspaceID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) Update(ctx context.Context, st *domain.ServiceType) error {
	return m.Called(ctx, st).Error(0)
}

func (m *MockServiceTypeRepository) SetActive(ctx context.Context, workspaceID, id int64, active bool) error {
	return m.Called(ctx, workspaceID, id, active).Error(0)
}

type MockBookingCounter struct {
	mock.Mock
}

func (m *MockBookingCounter) CountByServiceType(ctx context.Context, workspaceID, serviceTypeID int64) (int, error) {
	args := m.Called(ctx, workspaceID, serviceTypeID)
	return args.Int(0), args.Error(1)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var ctx = context.Background()

func validRequest() *models.ServiceTypeRequest {
	return &models.ServiceTypeRequest{Name: " Consultation ", DurationMinutes: 30, Price: ptr.Ptr(40.0), Capacity: 1}
}

func TestService_Create(t *testing.T) {
	repo := new(MockServiceTypeRepository)
	svc := NewService(repo, new(MockBookingCounter), passthroughTx{}, nopLogger{})

	repo.On("Create", ctx, mock.MatchedBy(func(st *domain.ServiceType) bool {
		return st.Name == "Consultation" && st.IsActive && st.WorkspaceID == 7
	})).Return(&domain.ServiceType{ID: 1, WorkspaceID: 7, Name: "Consultation", DurationMinutes: 30, Capacity: 1, IsActive: true}, nil)

	resp, err := svc.Create(ctx, 7, validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.True(t, resp.IsActive)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(new(MockServiceTypeRepository), new(MockBookingCounter), passthroughTx{}, nopLogger{})

	tests := []struct {
		name   string
		modify func(r *models.ServiceTypeRequest)
	}{
		{"empty name", func(r *models.ServiceTypeRequest) { r.Name = " " }},
		{"zero duration", func(r *models.ServiceTypeRequest) { r.DurationMinutes = 0 }},
		{"duration over a day", func(r *models.ServiceTypeRequest) { r.DurationMinutes = 1441 }},
		{"negative price", func(r *models.ServiceTypeRequest) { r.Price = ptr.Ptr(-1.0) }},
		{"zero capacity", func(r *models.ServiceTypeRequest) { r.Capacity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)
			_, err := svc.Create(ctx, 7, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Update_RejectedWhenReferenced(t *testing.T) {
	repo := new(MockServiceTypeRepository)
	counter := new(MockBookingCounter)
	svc := NewService(repo, counter, passthroughTx{}, nopLogger{})

	repo.On("GetByID", ctx, int64(7), int64(1)).Return(&domain.ServiceType{ID: 1, WorkspaceID: 7}, nil)
	counter.On("CountByServiceType", ctx, int64(7), int64(1)).Return(2, nil)

	_, err := svc.Update(ctx, 7, 1, validRequest())

	assert.ErrorIs(t, err, ErrServiceTypeInUse)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_Unreferenced(t *testing.T) {
	repo := new(MockServiceTypeRepository)
	counter := new(MockBookingCounter)
	svc := NewService(repo, counter, passthroughTx{}, nopLogger{})

	repo.On("GetByID", ctx, int64(7), int64(1)).Return(&domain.ServiceType{ID: 1, WorkspaceID: 7, IsActive: true}, nil)
	counter.On("CountByServiceType", ctx, int64(7), int64(1)).Return(0, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.ServiceType")).Return(nil)

	req := validRequest()
	req.DurationMinutes = 45
	resp, err := svc.Update(ctx, 7, 1, req)

	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, "Consultation", resp.Name)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockServiceTypeRepository)
	svc := NewService(repo, new(MockBookingCounter), passthroughTx{}, nopLogger{})

	repo.On("GetByID", ctx, int64(7), int64(9)).Return(nil, catalogRepo.ErrServiceTypeNotFound)

	_, err := svc.Update(ctx, 7, 9, validRequest())
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}

func TestService_Deactivate(t *testing.T) {
	repo := new(MockServiceTypeRepository)
	svc := NewService(repo, new(MockBookingCounter), passthroughTx{}, nopLogger{})

	repo.On("SetActive", ctx, int64(7), int64(1), false).Return(nil)
	repo.On("SetActive", ctx, int64(7), int64(2), false).Return(catalogRepo.ErrServiceTypeNotFound)
	repo.On("SetActive", ctx, int64(7), int64(3), false).Return(errors.New("db down"))

	assert.NoError(t, svc.Deactivate(ctx, 7, 1))
	assert.ErrorIs(t, svc.Deactivate(ctx, 7, 2), ErrServiceTypeNotFound)
	assert.ErrorIs(t, svc.Deactivate(ctx, 7, 3), ErrInternal)
}
