package get_booking_stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/internal/engine/stats"
	scheduleRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/schedule"
)

// UseCase use case для статистики бронирований
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	trendDays    int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// trendDays - длина окна тренда по умолчанию
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	trendDays int,
	logger Logger,
) *UseCase {
	if trendDays <= 0 {
		trendDays = domain.DefaultTrendDays
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		trendDays:    trendDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute пересчитывает статистику при каждом запросе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookingStats: workspace=%d, days=%d", req.WorkspaceID, req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookingStats: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = uc.trendDays
	}

	// 2. Определяем начало окна
	var from time.Time
	if req.From != nil {
		from = domain.DateOf(*req.From)
	} else {
		today, err := uc.today(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		from = stats.TrailingWindowStart(today, days)
	}

	// 3. Получаем все бронирования рабочего пространства
	bookings, err := uc.bookingRepo.List(ctx, req.WorkspaceID, domain.BookingsFilter{})
	if err != nil {
		uc.logger.Error("GetBookingStats: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Считаем сводку и тренд
	summary := stats.Summarize(bookings)
	trend := stats.Trend(bookings, from, days)

	uc.logger.Info("GetBookingStats: total=%d, occupancy=%.2f, window=%s+%dd",
		summary.Total, summary.OccupancyRate, from.Format(domain.DateFormat), days)

	return &Response{
		Summary: summary,
		From:    from,
		Days:    days,
		Trend:   trend,
	}, nil
}

// today текущий день в часовом поясе рабочего пространства (UTC, если расписания нет)
func (uc *UseCase) today(ctx context.Context, workspaceID int64) (time.Time, error) {
	schedule, err := uc.scheduleRepo.Get(ctx, workspaceID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetBookingStats: failed to get schedule: %v", err)
		return time.Time{}, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if schedule == nil {
		schedule = &domain.WorkspaceSchedule{WorkspaceID: workspaceID}
	}
	return schedule.Today(uc.timeProvider.Now()), nil
}
