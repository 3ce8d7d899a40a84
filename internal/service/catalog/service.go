package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/catalog/models"
)

// Service сервис каталога типов услуг
type Service struct {
	repo      ServiceTypeRepository
	bookings  BookingCounter
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ServiceTypeRepository, bookings BookingCounter, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		bookings:  bookings,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает активный тип услуги
func (s *Service) Create(ctx context.Context, workspaceID int64, req *models.ServiceTypeRequest) (*models.ServiceTypeResponse, error) {
	s.logger.Info("CreateServiceType: workspace=%d, name=%s", workspaceID, req.Name)

	if err := validateServiceType(req); err != nil {
		s.logger.Warn("CreateServiceType: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.ServiceType{
		WorkspaceID:     workspaceID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Capacity:        req.Capacity,
		IsActive:        true,
	})
	if err != nil {
		s.logger.Error("CreateServiceType: repository error for workspace=%d: %v", workspaceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateServiceType: created service type id=%d", created.ID)
	return models.FromDomain(created), nil
}

// GetByID получает тип услуги
func (s *Service) GetByID(ctx context.Context, workspaceID, id int64) (*models.ServiceTypeResponse, error) {
	st, err := s.repo.GetByID(ctx, workspaceID, id)
	if err != nil {
		return nil, s.mapRepoError("GetServiceType", id, err)
	}
	return models.FromDomain(st), nil
}

// List возвращает типы услуг рабочего пространства
func (s *Service) List(ctx context.Context, workspaceID int64, onlyActive bool) (*models.ServiceTypeListResponse, error) {
	list, err := s.repo.List(ctx, workspaceID, onlyActive)
	if err != nil {
		s.logger.Error("ListServiceTypes: repository error for workspace=%d: %v", workspaceID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(list), nil
}

// Update меняет тип услуги, пока на него не ссылается ни одно бронирование
// После первого бронирования длительность и цена фиксируются, остается только деактивация
func (s *Service) Update(ctx context.Context, workspaceID, id int64, req *models.ServiceTypeRequest) (*models.ServiceTypeResponse, error) {
	s.logger.Info("UpdateServiceType: workspace=%d, id=%d", workspaceID, id)

	if err := validateServiceType(req); err != nil {
		s.logger.Warn("UpdateServiceType: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.ServiceType
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		st, err := s.repo.GetByID(ctx, workspaceID, id)
		if err != nil {
			return s.mapRepoError("UpdateServiceType", id, err)
		}

		count, err := s.bookings.CountByServiceType(ctx, workspaceID, id)
		if err != nil {
			s.logger.Error("UpdateServiceType: failed to count bookings for id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - count bookings: %v", ErrInternal, err)
		}
		if count > 0 {
			s.logger.Warn("UpdateServiceType: id=%d is referenced by %d bookings", id, count)
			return ErrServiceTypeInUse
		}

		st.Name = strings.TrimSpace(req.Name)
		st.Description = req.Description
		st.DurationMinutes = req.DurationMinutes
		st.Price = req.Price
		st.Capacity = req.Capacity

		if err := s.repo.Update(ctx, st); err != nil {
			return s.mapRepoError("UpdateServiceType", id, err)
		}
		updated = st
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateServiceType: updated service type id=%d", id)
	return models.FromDomain(updated), nil
}

// Deactivate скрывает тип услуги от новых бронирований, существующие бронирования не меняются
func (s *Service) Deactivate(ctx context.Context, workspaceID, id int64) error {
	s.logger.Info("DeactivateServiceType: workspace=%d, id=%d", workspaceID, id)

	if err := s.repo.SetActive(ctx, workspaceID, id, false); err != nil {
		return s.mapRepoError("DeactivateServiceType", id, err)
	}
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, ErrServiceTypeInUse) || errors.Is(err, ErrInternal) || errors.Is(err, ErrServiceTypeNotFound) {
		return err
	}
	if errors.Is(err, catalogRepo.ErrServiceTypeNotFound) {
		s.logger.Warn("%s: service type id=%d not found", op, id)
		return ErrServiceTypeNotFound
	}
	s.logger.Error("%s: repository error for id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
