package staff_occupancy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/service/bookings/models"
)

type BookingService interface {
	StaffOccupancy(ctx context.Context, workspaceID int64, date *time.Time) (*models.StaffOccupancyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
