package inventory

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// InventoryRepository интерфейс репозитория склада
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	GetByID(ctx context.Context, workspaceID, id int64) (*domain.InventoryItem, error)
	GetByIDs(ctx context.Context, workspaceID int64, ids []int64) ([]domain.InventoryItem, error)
	List(ctx context.Context, workspaceID int64, filter domain.InventoryFilter) ([]domain.InventoryItem, error)
	UpdateStock(ctx context.Context, item *domain.InventoryItem) error
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, workspaceID, id int64) error
	GetRules(ctx context.Context, workspaceID, serviceTypeID int64) ([]domain.ConsumptionRule, error)
	ReplaceRules(ctx context.Context, workspaceID, serviceTypeID int64, rules []domain.ConsumptionRule) error
}

// ServiceTypeRepository нужен для проверки существования типа услуги при настройке правил списания
type ServiceTypeRepository interface {
	GetByID(ctx context.Context, workspaceID, id int64) (*domain.ServiceType, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
