package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/schedule/models"
)

// Service сервис расписаний рабочих пространств
type Service struct {
	repo               ScheduleRepository
	txManager          TransactionManager
	defaultGranularity int
	timeProvider       TimeProvider
	logger             Logger
}

// NewService создает новый экземпляр сервиса расписаний
// defaultGranularity подставляется, если в запросе шаг слотов не указан
func NewService(repo ScheduleRepository, txManager TransactionManager, defaultGranularity int, logger Logger) *Service {
	if defaultGranularity <= 0 {
		defaultGranularity = domain.DefaultSlotGranularityMinutes
	}
	return &Service{
		repo:               repo,
		txManager:          txManager,
		defaultGranularity: defaultGranularity,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Get получает расписание рабочего пространства
func (s *Service) Get(ctx context.Context, workspaceID int64) (*models.ScheduleResponse, error) {
	schedule, err := s.repo.Get(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetSchedule: schedule for workspace=%d not found", workspaceID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetSchedule: repository error for workspace=%d: %v", workspaceID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomain(schedule), nil
}

// Replace заменяет расписание целиком
func (s *Service) Replace(ctx context.Context, workspaceID int64, req *models.ScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceSchedule: workspace=%d, timezone=%s", workspaceID, req.Timezone)

	// 1. Конвертируем и валидируем
	hours, err := req.ToDomainHours()
	if err != nil {
		s.logger.Warn("ReplaceSchedule: invalid hours for workspace=%d: %v", workspaceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	schedule := &domain.WorkspaceSchedule{
		WorkspaceID:            workspaceID,
		Timezone:               strings.TrimSpace(req.Timezone),
		SlotGranularityMinutes: req.SlotGranularityMinutes,
		Hours:                  hours,
		UpdatedAt:              s.timeProvider.Now(),
	}
	if schedule.Timezone == "" {
		schedule.Timezone = domain.DefaultTimezone
	}
	if schedule.SlotGranularityMinutes == 0 {
		schedule.SlotGranularityMinutes = s.defaultGranularity
	}

	if err := validateSchedule(schedule); err != nil {
		s.logger.Warn("ReplaceSchedule: validation failed for workspace=%d: %v", workspaceID, err)
		return nil, err
	}

	// 2. Сохраняем атомарно: строка расписания и интервалы
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.Replace(ctx, schedule)
	})
	if err != nil {
		s.logger.Error("ReplaceSchedule: failed to save schedule for workspace=%d: %v", workspaceID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceSchedule: schedule for workspace=%d saved", workspaceID)
	return models.FromDomain(schedule), nil
}
