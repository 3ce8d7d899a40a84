package inventory

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory/models"
)

func validateItem(req *models.CreateItemRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if req.ReorderLevel < 0 {
		return fmt.Errorf("%w: reorder level must not be negative", ErrInvalidInput)
	}
	if req.UnitCost < 0 {
		return fmt.Errorf("%w: unit cost must not be negative", ErrInvalidInput)
	}
	return nil
}

// validateRules проверяет количество и отсутствие повторов позиций
func validateRules(rules []models.ConsumptionRuleDTO) error {
	seen := make(map[int64]struct{}, len(rules))
	for _, r := range rules {
		if r.InventoryItemID <= 0 {
			return fmt.Errorf("%w: inventory item id must be positive", ErrInvalidInput)
		}
		if r.QuantityPerBooking <= 0 || r.QuantityPerBooking > domain.MaxConsumptionQuantity {
			return fmt.Errorf("%w: quantity per booking must be between 1 and %d",
				ErrInvalidInput, domain.MaxConsumptionQuantity)
		}
		if _, dup := seen[r.InventoryItemID]; dup {
			return fmt.Errorf("%w: item %d listed twice", ErrInvalidInput, r.InventoryItemID)
		}
		seen[r.InventoryItemID] = struct{}{}
	}
	return nil
}
