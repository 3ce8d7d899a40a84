package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/internal/engine/ledger"
	catalogRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/catalog"
	inventoryRepo "github.com/m04kA/SMC-ResourceBookingService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory/models"
)

// Service сервис склада и правил списания
type Service struct {
	repo         InventoryRepository
	serviceTypes ServiceTypeRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса склада
func NewService(
	repo InventoryRepository,
	serviceTypes ServiceTypeRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		serviceTypes: serviceTypes,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create добавляет позицию склада
func (s *Service) Create(ctx context.Context, workspaceID int64, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("CreateItem: workspace=%d, name=%s", workspaceID, req.Name)

	if err := validateItem(req); err != nil {
		s.logger.Warn("CreateItem: validation failed: %v", err)
		return nil, err
	}

	item := &domain.InventoryItem{
		WorkspaceID:  workspaceID,
		Name:         strings.TrimSpace(req.Name),
		SKU:          req.SKU,
		Category:     req.Category,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		UnitCost:     req.UnitCost,
		Supplier:     req.Supplier,
		Location:     req.Location,
		Notes:        req.Notes,
	}
	if item.Quantity > 0 {
		now := s.timeProvider.Now()
		item.LastRestocked = &now
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error("CreateItem: repository error for workspace=%d: %v", workspaceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateItem: created item id=%d, status=%s", created.ID, created.Status())
	return models.FromDomainItem(created), nil
}

// GetByID получает позицию склада
func (s *Service) GetByID(ctx context.Context, workspaceID, id int64) (*models.ItemResponse, error) {
	item, err := s.repo.GetByID(ctx, workspaceID, id)
	if err != nil {
		return nil, s.mapItemError("GetItem", id, err)
	}
	return models.FromDomainItem(item), nil
}

// List возвращает позиции склада, Query ищет по названию, артикулу, категории и поставщику
func (s *Service) List(ctx context.Context, req *models.ListItemsRequest) (*models.ItemListResponse, error) {
	items, err := s.list(ctx, req.WorkspaceID, domain.InventoryFilter{Query: req.Query, Category: req.Category})
	if err != nil {
		return nil, err
	}
	return models.FromDomainItemList(items), nil
}

// LowStock возвращает позиции с низким остатком или закончившиеся
// Статус пересчитывается из количества, сохраненная колонка не используется
func (s *Service) LowStock(ctx context.Context, workspaceID int64) (*models.ItemListResponse, error) {
	items, err := s.list(ctx, workspaceID, domain.InventoryFilter{})
	if err != nil {
		return nil, err
	}
	return models.FromDomainItemList(ledger.LowStock(items)), nil
}

// OutOfStock возвращает закончившиеся позиции
func (s *Service) OutOfStock(ctx context.Context, workspaceID int64) (*models.ItemListResponse, error) {
	items, err := s.list(ctx, workspaceID, domain.InventoryFilter{})
	if err != nil {
		return nil, err
	}
	return models.FromDomainItemList(ledger.OutOfStock(items)), nil
}

// Value возвращает суммарную стоимость склада и число проблемных позиций
func (s *Service) Value(ctx context.Context, workspaceID int64) (*models.ValueResponse, error) {
	items, err := s.list(ctx, workspaceID, domain.InventoryFilter{})
	if err != nil {
		return nil, err
	}
	return &models.ValueResponse{
		TotalValue:      ledger.TotalValue(items),
		ItemCount:       len(items),
		LowStockCount:   len(ledger.LowStock(items)),
		OutOfStockCount: len(ledger.OutOfStock(items)),
	}, nil
}

// Restock пополняет позицию склада
// Строка блокируется на время транзакции, чтобы не потерять параллельное списание
func (s *Service) Restock(ctx context.Context, workspaceID, id int64, amount int) (*models.ItemResponse, error) {
	s.logger.Info("Restock: workspace=%d, item=%d, amount=%d", workspaceID, id, amount)

	if amount <= 0 {
		s.logger.Warn("Restock: invalid amount=%d for item=%d", amount, id)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRestockAmount, amount)
	}

	var restocked domain.InventoryItem
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		item, err := s.repo.GetByID(ctx, workspaceID, id)
		if err != nil {
			return s.mapItemError("Restock", id, err)
		}

		restocked, err = ledger.Restock(*item, amount, s.timeProvider.Now())
		if err != nil {
			return err
		}

		if err := s.repo.UpdateStock(ctx, &restocked); err != nil {
			return s.mapItemError("Restock", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Restock: item=%d quantity=%d status=%s", id, restocked.Quantity, restocked.Status())
	return models.FromDomainItem(&restocked), nil
}

// Update редактирует позицию склада
// Увеличение количества считается пополнением и обновляет дату последнего пополнения
func (s *Service) Update(ctx context.Context, workspaceID, id int64, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("UpdateItem: workspace=%d, item=%d", workspaceID, id)

	if err := validateItem(req); err != nil {
		s.logger.Warn("UpdateItem: validation failed: %v", err)
		return nil, err
	}

	var updated domain.InventoryItem
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		item, err := s.repo.GetByID(ctx, workspaceID, id)
		if err != nil {
			return s.mapItemError("UpdateItem", id, err)
		}

		now := s.timeProvider.Now()
		if req.Quantity > item.Quantity {
			item.LastRestocked = &now
		}

		item.Name = strings.TrimSpace(req.Name)
		item.SKU = req.SKU
		item.Category = req.Category
		item.Quantity = req.Quantity
		item.ReorderLevel = req.ReorderLevel
		item.UnitCost = req.UnitCost
		item.Supplier = req.Supplier
		item.Location = req.Location
		item.Notes = req.Notes
		item.UpdatedAt = now

		if err := s.repo.Update(ctx, item); err != nil {
			return s.mapItemError("UpdateItem", id, err)
		}
		updated = *item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateItem: item=%d quantity=%d reorder level=%d status=%s",
		id, updated.Quantity, updated.ReorderLevel, updated.Status())
	return models.FromDomainItem(&updated), nil
}

// Delete удаляет позицию склада
func (s *Service) Delete(ctx context.Context, workspaceID, id int64) error {
	s.logger.Info("DeleteItem: workspace=%d, item=%d", workspaceID, id)

	if err := s.repo.Delete(ctx, workspaceID, id); err != nil {
		return s.mapItemError("DeleteItem", id, err)
	}
	return nil
}

// GetRules возвращает правила списания типа услуги
func (s *Service) GetRules(ctx context.Context, workspaceID, serviceTypeID int64) (*models.ConsumptionRulesResponse, error) {
	if err := s.ensureServiceType(ctx, workspaceID, serviceTypeID); err != nil {
		return nil, err
	}

	rules, err := s.repo.GetRules(ctx, workspaceID, serviceTypeID)
	if err != nil {
		s.logger.Error("GetRules: repository error for service type=%d: %v", serviceTypeID, err)
		return nil, fmt.Errorf("%w: GetRules - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRules(serviceTypeID, rules), nil
}

// ReplaceRules заменяет правила списания типа услуги
// Все позиции должны принадлежать тому же рабочему пространству
func (s *Service) ReplaceRules(
	ctx context.Context,
	workspaceID, serviceTypeID int64,
	req *models.ConsumptionRulesRequest,
) (*models.ConsumptionRulesResponse, error) {
	s.logger.Info("ReplaceRules: workspace=%d, service type=%d, rules=%d", workspaceID, serviceTypeID, len(req.Rules))

	if err := validateRules(req.Rules); err != nil {
		s.logger.Warn("ReplaceRules: validation failed: %v", err)
		return nil, err
	}

	rules := make([]domain.ConsumptionRule, 0, len(req.Rules))
	ids := make([]int64, 0, len(req.Rules))
	for _, r := range req.Rules {
		rules = append(rules, domain.ConsumptionRule{
			ServiceTypeID:      serviceTypeID,
			InventoryItemID:    r.InventoryItemID,
			QuantityPerBooking: r.QuantityPerBooking,
		})
		ids = append(ids, r.InventoryItemID)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.ensureServiceType(ctx, workspaceID, serviceTypeID); err != nil {
			return err
		}

		items, err := s.repo.GetByIDs(ctx, workspaceID, ids)
		if err != nil {
			s.logger.Error("ReplaceRules: failed to load items: %v", err)
			return fmt.Errorf("%w: ReplaceRules - load items: %v", ErrInternal, err)
		}
		if len(items) != len(ids) {
			s.logger.Warn("ReplaceRules: %d of %d items not found in workspace=%d", len(ids)-len(items), len(ids), workspaceID)
			return fmt.Errorf("%w: unknown inventory item", ErrItemNotFound)
		}

		if err := s.repo.ReplaceRules(ctx, workspaceID, serviceTypeID, rules); err != nil {
			s.logger.Error("ReplaceRules: repository error for service type=%d: %v", serviceTypeID, err)
			return fmt.Errorf("%w: ReplaceRules - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return models.FromDomainRules(serviceTypeID, rules), nil
}

func (s *Service) list(ctx context.Context, workspaceID int64, filter domain.InventoryFilter) ([]domain.InventoryItem, error) {
	items, err := s.repo.List(ctx, workspaceID, filter)
	if err != nil {
		s.logger.Error("ListItems: repository error for workspace=%d: %v", workspaceID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

func (s *Service) ensureServiceType(ctx context.Context, workspaceID, serviceTypeID int64) error {
	if _, err := s.serviceTypes.GetByID(ctx, workspaceID, serviceTypeID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceTypeNotFound) {
			s.logger.Warn("service type id=%d not found in workspace=%d", serviceTypeID, workspaceID)
			return ErrServiceTypeNotFound
		}
		s.logger.Error("failed to get service type id=%d: %v", serviceTypeID, err)
		return fmt.Errorf("%w: get service type: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) mapItemError(op string, id int64, err error) error {
	if errors.Is(err, inventoryRepo.ErrItemNotFound) {
		s.logger.Warn("%s: item id=%d not found", op, id)
		return ErrItemNotFound
	}
	s.logger.Error("%s: repository error for item id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
