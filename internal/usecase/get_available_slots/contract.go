package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// ServiceTypeRepository источник каталога услуг
type ServiceTypeRepository interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*domain.ServiceType, error)
}

// ScheduleRepository источник часов работы
type ScheduleRepository interface {
	Get(ctx context.Context, workspaceID int64) (*domain.WorkspaceSchedule, error)
}

// BookingRepository источник существующих бронирований
type BookingRepository interface {
	GetForDay(ctx context.Context, workspaceID, serviceTypeID int64, date time.Time) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
