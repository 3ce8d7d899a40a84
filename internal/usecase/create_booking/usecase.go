package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/internal/engine/validator"
	scheduleRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/slotlock"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	serviceTypeRepo ServiceTypeRepository
	scheduleRepo    ScheduleRepository
	locker          SlotLocker
	publisher       EventPublisher
	metrics         MetricsRecorder
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceTypeRepo ServiceTypeRepository,
	scheduleRepo ScheduleRepository,
	locker SlotLocker,
	publisher EventPublisher,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		serviceTypeRepo: serviceTypeRepo,
		scheduleRepo:    scheduleRepo,
		locker:          locker,
		publisher:       publisher,
		metrics:         metrics,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: workspace=%d, service_type=%d, date=%s, time=%s",
		req.WorkspaceID, req.ServiceTypeID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.reject(err)
		return nil, err
	}
	date := domain.DateOf(req.Date)

	// 2. Берем блокировку пула мест. Ошибка не фатальна: транзакция ниже все равно проверяет вместимость
	release, err := uc.locker.Acquire(ctx, slotlock.Key(req.WorkspaceID, req.ServiceTypeID, date))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: request cancelled: %v", ErrInternal, ctx.Err())
		}
		uc.logger.Warn("CreateBooking: slot lock not acquired, relying on transaction: %v", err)
	} else {
		defer release()
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	input := validator.Input{
		WorkspaceID:   req.WorkspaceID,
		ServiceTypeID: req.ServiceTypeID,
		Date:          date,
		StartTime:     req.StartTime,
		Customer: domain.Customer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		Notes:         req.Notes,
		AssignedStaff: req.AssignedStaff,
	}

	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Каталог услуг рабочего пространства
		catalog, err := uc.serviceTypeRepo.List(txCtx, req.WorkspaceID, false)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get service types: %v", err)
			return fmt.Errorf("%w: failed to get service types: %w", ErrInternal, err)
		}

		// 4.2. Расписание (если его нет, рабочее пространство закрыто)
		schedule, err := uc.scheduleRepo.Get(txCtx, req.WorkspaceID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
		}
		if schedule == nil {
			schedule = &domain.WorkspaceSchedule{WorkspaceID: req.WorkspaceID, Hours: domain.OperatingHours{}}
		}

		// 4.3. Бронирования на эту дату с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetForDay(txCtx, req.WorkspaceID, req.ServiceTypeID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 4.4. Проверяем запрос и собираем бронирование
		booking, err := validator.RequestBooking(input, catalog, *schedule, existing, now)
		if err != nil {
			uc.logger.Warn("CreateBooking: request rejected: %v", err)
			return err
		}

		// 4.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.reject(err)
		return nil, err
	}

	uc.metrics.RecordBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d, %s-%s",
		result.ID, result.Slot.Start, result.Slot.End)

	// 5. Уведомляем после коммита, ошибка доставки не влияет на ответ
	event := domain.NewBookingEvent(domain.EventBookingCreated, *result, now)
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	return fromDomain(result), nil
}

func (uc *UseCase) reject(err error) {
	if reason, ok := rejectionReason(err); ok {
		uc.metrics.RecordBookingRejected(reason)
	}
}
