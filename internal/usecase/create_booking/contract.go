package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/slotlock"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetForDay(ctx context.Context, workspaceID, serviceTypeID int64, date time.Time) ([]domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ServiceTypeRepository источник каталога услуг
type ServiceTypeRepository interface {
	List(ctx context.Context, workspaceID int64, onlyActive bool) ([]domain.ServiceType, error)
}

// ScheduleRepository источник часов работы
type ScheduleRepository interface {
	Get(ctx context.Context, workspaceID int64) (*domain.WorkspaceSchedule, error)
}

// SlotLocker распределенная блокировка пула мест (workspace, тип услуги, дата)
type SlotLocker interface {
	Acquire(ctx context.Context, key string) (slotlock.ReleaseFunc, error)
}

// EventPublisher отправляет события бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}

// MetricsRecorder бизнес-метрики бронирований
type MetricsRecorder interface {
	RecordBookingCreated()
	RecordBookingRejected(reason string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
