package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/internal/engine/availability"
	catalogRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/schedule"
)

// UseCase use case для получения доступных слотов
type UseCase struct {
	serviceTypeRepo ServiceTypeRepository
	scheduleRepo    ScheduleRepository
	bookingRepo     BookingRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceTypeRepo ServiceTypeRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceTypeRepo: serviceTypeRepo,
		scheduleRepo:    scheduleRepo,
		bookingRepo:     bookingRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чтение выполняется без транзакции: расчет чистый, а блокировки строк здесь не нужны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: workspace=%d, service_type=%d, date=%s",
		req.WorkspaceID, req.ServiceTypeID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}
	date := domain.DateOf(req.Date)

	// 2. Получаем тип услуги
	serviceType, err := uc.serviceTypeRepo.GetByID(ctx, req.WorkspaceID, req.ServiceTypeID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: service type id=%d not found", req.ServiceTypeID)
			return nil, fmt.Errorf("%w: id=%d", ErrUnknownService, req.ServiceTypeID)
		}
		uc.logger.Error("GetAvailableSlots: failed to get service type id=%d: %v", req.ServiceTypeID, err)
		return nil, fmt.Errorf("%w: failed to get service type: %v", ErrInternal, err)
	}
	if !serviceType.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: service type id=%d is not bookable", req.ServiceTypeID)
		return nil, fmt.Errorf("%w: id=%d is inactive", ErrUnknownService, req.ServiceTypeID)
	}

	// 3. Получаем расписание (нет расписания - рабочее пространство закрыто)
	schedule, err := uc.scheduleRepo.Get(ctx, req.WorkspaceID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if schedule == nil {
		uc.logger.Info("GetAvailableSlots: workspace=%d has no schedule", req.WorkspaceID)
		schedule = &domain.WorkspaceSchedule{WorkspaceID: req.WorkspaceID, Hours: domain.OperatingHours{}}
	}

	// 4. Получаем бронирования на дату
	bookings, err := uc.bookingRepo.GetForDay(ctx, req.WorkspaceID, req.ServiceTypeID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Рассчитываем слоты
	slots := availability.ComputeSlots(*serviceType, date, schedule.Hours, bookings, schedule.Granularity())

	uc.logger.Info("GetAvailableSlots: found %d available slots (existing bookings: %d)", len(slots), len(bookings))

	return &Response{
		WorkspaceID:     req.WorkspaceID,
		ServiceTypeID:   serviceType.ID,
		ServiceName:     serviceType.Name,
		Date:            date,
		DurationMinutes: serviceType.DurationMinutes,
		Capacity:        serviceType.Capacity,
		Slots:           slots,
	}, nil
}
