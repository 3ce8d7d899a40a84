package catalog

import (
	"context"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// ServiceTypeRepository интерфейс репозитория каталога
type ServiceTypeRepository interface {
	Create(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error)
	GetByID(ctx context.Context, workspaceID, id int64) (*domain.ServiceType, error)
	List(ctx context.Context, workspaceID int64, onlyActive bool) ([]domain.ServiceType, error)
	Update(ctx context.Context, st *domain.ServiceType) error
	SetActive(ctx context.Context, workspaceID, id int64, active bool) error
}

// BookingCounter проверяет, ссылаются ли бронирования на тип услуги
type BookingCounter interface {
	CountByServiceType(ctx context.Context, workspaceID, serviceTypeID int64) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
