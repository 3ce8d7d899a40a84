package update_booking_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	updateStatus "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/update_booking_status"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *updateStatus.Request) (*updateStatus.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*updateStatus.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patch(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"workspaceId": "1", "bookingId": "20"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_CompletedWithWarning(t *testing.T) {
	uc := new(MockUseCase)
	h := NewHandler(uc, nopLogger{})

	uc.On("Execute", mock.Anything, &updateStatus.Request{WorkspaceID: 1, BookingID: 20, Status: "completed"}).
		Return(&updateStatus.Response{
			Booking:        domain.Booking{ID: 20, WorkspaceID: 1, Status: domain.StatusCompleted, Slot: domain.TimeSlot{Start: "09:00", End: "09:30"}},
			PreviousStatus: domain.StatusConfirmed,
			Warnings: []domain.StockShortage{
				{ItemID: 100, ItemName: "Gloves", Required: 2, Available: 1},
			},
		}, nil)

	rec := patch(h, `{"status":"completed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body UpdateStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "completed", body.Booking.Status)
	assert.Equal(t, "confirmed", body.PreviousStatus)
	require.Len(t, body.Warnings, 1)
	assert.Equal(t, int64(100), body.Warnings[0].InventoryItemID)
	assert.Equal(t, 1, body.Warnings[0].Available)
	assert.NotEmpty(t, body.Warnings[0].Message)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		updateStatus.ErrInvalidInput:      http.StatusBadRequest,
		updateStatus.ErrBookingNotFound:   http.StatusNotFound,
		updateStatus.ErrInvalidTransition: http.StatusConflict,
		updateStatus.ErrInternal:          http.StatusInternalServerError,
	}
	for err, status := range cases {
		uc := new(MockUseCase)
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, err)

		rec := patch(NewHandler(uc, nopLogger{}), `{"status":"confirmed"}`)
		assert.Equal(t, status, rec.Code, err.Error())
	}
}
