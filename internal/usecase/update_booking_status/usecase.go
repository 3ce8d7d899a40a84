package update_booking_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/internal/engine/ledger"
	"github.com/m04kA/SMC-ResourceBookingService/internal/engine/lifecycle"
	bookingRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/booking"
)

// UseCase use case для смены статуса бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	inventoryRepo InventoryRepository
	publisher     EventPublisher
	metrics       MetricsRecorder
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	inventoryRepo InventoryRepository,
	publisher EventPublisher,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		inventoryRepo: inventoryRepo,
		publisher:     publisher,
		metrics:       metrics,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет переход статуса
// Переход и списание расходников фиксируются одной транзакцией
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: workspace=%d, booking=%d, status=%s",
		req.WorkspaceID, req.BookingID, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}
	next := domain.BookingStatus(req.Status)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result Response

	// 3. Выполняем переход в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование с блокировкой (FOR UPDATE)
		current, err := uc.bookingRepo.GetByID(txCtx, req.WorkspaceID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 3.2. Проверяем переход по таблице статусов
		updated, err := lifecycle.Transition(*current, next, now)
		if err != nil {
			uc.logger.Warn("UpdateBookingStatus: %v", err)
			return err
		}

		// 3.3. Списываем расходники при первом входе в completed
		if updated.NeedsConsumption() {
			shortages, err := uc.applyConsumption(txCtx, updated, now)
			if err != nil {
				return err
			}
			updated.ConsumptionApplied = true
			result.Warnings = shortages
		}

		// 3.4. Сохраняем статус
		if err := uc.bookingRepo.UpdateStatus(txCtx, &updated); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result.PreviousStatus = current.Status
		result.Booking = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordStatusTransition(string(next))
	uc.metrics.RecordStockShortages(len(result.Warnings))

	for _, w := range result.Warnings {
		uc.logger.Warn("UpdateBookingStatus: booking id=%d: %v", req.BookingID, w)
	}
	uc.logger.Info("UpdateBookingStatus: booking id=%d %s -> %s", req.BookingID, result.PreviousStatus, next)

	// 4. Уведомляем после коммита
	event := domain.NewBookingEvent(domain.EventBookingStatusChanged, result.Booking, now)
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to publish event for booking id=%d: %v", req.BookingID, err)
	}

	return &result, nil
}

// applyConsumption списывает расходники по правилам типа услуги и возвращает нехватки
func (uc *UseCase) applyConsumption(ctx context.Context, b domain.Booking, now time.Time) ([]domain.StockShortage, error) {
	rules, err := uc.inventoryRepo.GetRules(ctx, b.WorkspaceID, b.ServiceTypeID)
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to get consumption rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get consumption rules: %w", ErrInternal, err)
	}
	if len(rules) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(rules))
	for _, rule := range rules {
		ids = append(ids, rule.InventoryItemID)
	}

	// позиции блокируются (FOR UPDATE), параллельные списания ждут
	items, err := uc.inventoryRepo.GetByIDs(ctx, b.WorkspaceID, ids)
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to get inventory items: %v", err)
		return nil, fmt.Errorf("%w: failed to get inventory items: %w", ErrInternal, err)
	}

	consumption, err := ledger.ApplyConsumption(b, rules, items, now)
	if err != nil {
		return nil, fmt.Errorf("%w: apply consumption: %v", ErrInternal, err)
	}

	for i := range consumption.Updated {
		item := consumption.Updated[i]
		if err := uc.inventoryRepo.UpdateStock(ctx, &item); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to update item id=%d: %v", item.ID, err)
			return nil, fmt.Errorf("%w: failed to update item: %w", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateBookingStatus: consumption applied for booking id=%d, items=%d, shortages=%d",
		b.ID, len(consumption.Updated), len(consumption.Shortages))

	return consumption.Shortages, nil
}
