package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/schedule/models"
)

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Get(ctx context.Context, workspaceID int64) (*domain.WorkspaceSchedule, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceSchedule), args.Error(1)
}

func (m *MockScheduleRepository) Replace(ctx context.Context, s *domain.WorkspaceSchedule) error {
	return m.Called(ctx, s).Error(0)
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
	now = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
)

func newService(repo *MockScheduleRepository) *Service {
	svc := NewService(repo, passthroughTx{}, 30, nopLogger{})
	svc.timeProvider = fixedTime{now}
	return svc
}

func TestService_Replace_SortsAndSaves(t *testing.T) {
	repo := new(MockScheduleRepository)
	svc := newService(repo)

	var saved *domain.WorkspaceSchedule
	repo.On("Replace", ctx, mock.AnythingOfType("*domain.WorkspaceSchedule")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.WorkspaceSchedule) }).
		Return(nil)

	resp, err := svc.Replace(ctx, 3, &models.ScheduleRequest{
		Timezone: "Europe/Moscow",
		Hours: map[string][]models.Interval{
			"Monday": {{Start: "14:00", End: "18:00"}, {Start: "09:00", End: "13:00"}},
			"sunday": {{Start: "10:00", End: "24:00"}},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 30, saved.SlotGranularityMinutes)
	assert.Equal(t, now, saved.UpdatedAt)
	assert.Equal(t, []domain.Interval{{Start: "09:00", End: "13:00"}, {Start: "14:00", End: "18:00"}}, saved.Hours[time.Monday])

	assert.Equal(t, []models.Interval{{Start: "09:00", End: "13:00"}, {Start: "14:00", End: "18:00"}}, resp.Hours["monday"])
	assert.Equal(t, []models.Interval{{Start: "10:00", End: "24:00"}}, resp.Hours["sunday"])
	assert.NotContains(t, resp.Hours, "tuesday")
}

func TestService_Replace_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  models.ScheduleRequest
	}{
		{"unknown timezone", models.ScheduleRequest{Timezone: "Mars/Olympus"}},
		{"granularity too small", models.ScheduleRequest{Timezone: "UTC", SlotGranularityMinutes: 1}},
		{"unknown weekday", models.ScheduleRequest{Timezone: "UTC", Hours: map[string][]models.Interval{
			"funday": {{Start: "09:00", End: "10:00"}},
		}}},
		{"malformed time", models.ScheduleRequest{Timezone: "UTC", Hours: map[string][]models.Interval{
			"monday": {{Start: "9am", End: "10:00"}},
		}}},
		{"start after end", models.ScheduleRequest{Timezone: "UTC", Hours: map[string][]models.Interval{
			"monday": {{Start: "18:00", End: "09:00"}},
		}}},
		{"empty interval", models.ScheduleRequest{Timezone: "UTC", Hours: map[string][]models.Interval{
			"monday": {{Start: "09:00", End: "09:00"}},
		}}},
		{"overlap", models.ScheduleRequest{Timezone: "UTC", Hours: map[string][]models.Interval{
			"monday": {{Start: "09:00", End: "12:00"}, {Start: "11:30", End: "15:00"}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockScheduleRepository)
			svc := newService(repo)

			_, err := svc.Replace(ctx, 3, &tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Replace_TouchingIntervalsAllowed(t *testing.T) {
	repo := new(MockScheduleRepository)
	svc := newService(repo)
	repo.On("Replace", ctx, mock.Anything).Return(nil)

	_, err := svc.Replace(ctx, 3, &models.ScheduleRequest{Timezone: "UTC", Hours: map[string][]models.Interval{
		"friday": {{Start: "09:00", End: "12:00"}, {Start: "12:00", End: "15:00"}},
	}})

	assert.NoError(t, err)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockScheduleRepository)
	svc := newService(repo)
	repo.On("Get", ctx, int64(3)).Return(nil, scheduleRepo.ErrScheduleNotFound)

	_, err := svc.Get(ctx, 3)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
