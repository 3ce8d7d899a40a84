package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/internal/engine/ledger"
	bookingRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
// Статусы меняются только через use case update_booking_status
type Service struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	upcomingLimit int
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	upcomingLimit int,
	logger Logger,
) *Service {
	if upcomingLimit <= 0 {
		upcomingLimit = domain.DefaultUpcomingLimit
	}
	return &Service{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		upcomingLimit: upcomingLimit,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, workspaceID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d, workspace=%d", id, workspaceID)

	booking, err := s.bookingRepo.GetByID(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found in workspace=%d", id, workspaceID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает бронирования рабочего пространства
//
// Представления:
// - all: все бронирования, сначала новые; поддерживает статус, поиск и дату
// - upcoming: с сегодняшнего дня, только pending/confirmed, по возрастанию, не больше upcomingLimit
// - today: бронирования на сегодня по времени начала
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: workspace=%d, view=%s", req.WorkspaceID, req.View)

	filter, err := s.buildFilter(ctx, req)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, req.WorkspaceID, filter)
	if err != nil {
		s.logger.Error("List: repository error for workspace=%d: %v", req.WorkspaceID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for workspace=%d", len(bookings), req.WorkspaceID)
	return models.FromDomainBookingList(bookings), nil
}

// StaffOccupancy возвращает загрузку сотрудников на дату (по умолчанию - сегодня)
func (s *Service) StaffOccupancy(ctx context.Context, workspaceID int64, date *time.Time) (*models.StaffOccupancyResponse, error) {
	day := time.Time{}
	if date != nil {
		day = domain.DateOf(*date)
	} else {
		today, err := s.today(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		day = today
	}

	s.logger.Info("StaffOccupancy: workspace=%d, date=%s", workspaceID, day.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.List(ctx, workspaceID, domain.BookingsFilter{Date: &day})
	if err != nil {
		s.logger.Error("StaffOccupancy: repository error for workspace=%d: %v", workspaceID, err)
		return nil, fmt.Errorf("%w: StaffOccupancy - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaffOccupancy(day, ledger.StaffOccupancy(bookings, day)), nil
}

func (s *Service) buildFilter(ctx context.Context, req *models.ListBookingsRequest) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{Query: req.Query}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for workspace=%d", *req.Status, req.WorkspaceID)
			return filter, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Statuses = []domain.BookingStatus{status}
	}

	switch req.View {
	case "", models.ViewAll:
		if req.Date != nil {
			date := domain.DateOf(*req.Date)
			filter.Date = &date
		}

	case models.ViewUpcoming:
		// Предстоящие брони только pending/confirmed, явный статус сужает этот набор
		statuses, err := upcomingStatuses(filter.Statuses)
		if err != nil {
			s.logger.Warn("List: status=%s is not allowed for upcoming view, workspace=%d", *req.Status, req.WorkspaceID)
			return filter, err
		}
		today, err := s.today(ctx, req.WorkspaceID)
		if err != nil {
			return filter, err
		}
		limit := s.upcomingLimit
		filter.DateFrom = &today
		filter.Limit = &limit
		filter.Statuses = statuses

	case models.ViewToday:
		today, err := s.today(ctx, req.WorkspaceID)
		if err != nil {
			return filter, err
		}
		filter.Date = &today

	default:
		s.logger.Warn("List: invalid view=%s for workspace=%d", req.View, req.WorkspaceID)
		return filter, fmt.Errorf("%w: invalid view %q", ErrInvalidInput, req.View)
	}

	return filter, nil
}

// upcomingStatuses пересекает запрошенные статусы с pending/confirmed
func upcomingStatuses(requested []domain.BookingStatus) ([]domain.BookingStatus, error) {
	allowed := []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed}
	if len(requested) == 0 {
		return allowed, nil
	}

	var result []domain.BookingStatus
	for _, status := range requested {
		if status == domain.StatusPending || status == domain.StatusConfirmed {
			result = append(result, status)
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: upcoming view accepts only pending or confirmed status", ErrInvalidInput)
	}
	return result, nil
}

// today возвращает текущий день в часовом поясе рабочего пространства (UTC, если расписания нет)
func (s *Service) today(ctx context.Context, workspaceID int64) (time.Time, error) {
	now := s.timeProvider.Now()

	schedule, err := s.scheduleRepo.Get(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return domain.DateOf(now.UTC()), nil
		}
		s.logger.Error("today: failed to get schedule for workspace=%d: %v", workspaceID, err)
		return time.Time{}, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	return schedule.Today(now), nil
}
