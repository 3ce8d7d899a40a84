package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*domain.Booking, error)
	List(ctx context.Context, workspaceID int64, filter domain.BookingsFilter) ([]domain.Booking, error)
}

// ScheduleRepository нужен для определения текущего дня в часовом поясе рабочего пространства
type ScheduleRepository interface {
	Get(ctx context.Context, workspaceID int64) (*domain.WorkspaceSchedule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
