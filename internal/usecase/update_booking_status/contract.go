package update_booking_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, booking *domain.Booking) error
}

// InventoryRepository склад и правила списания
type InventoryRepository interface {
	GetRules(ctx context.Context, workspaceID, serviceTypeID int64) ([]domain.ConsumptionRule, error)
	GetByIDs(ctx context.Context, workspaceID int64, ids []int64) ([]domain.InventoryItem, error)
	UpdateStock(ctx context.Context, item *domain.InventoryItem) error
}

// EventPublisher отправляет события бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}

// MetricsRecorder бизнес-метрики переходов статусов
type MetricsRecorder interface {
	RecordStatusTransition(status string)
	RecordStockShortages(count int)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
