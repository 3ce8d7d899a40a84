package domain

import (
	"fmt"
	"time"
)

// StockStatus is derived from quantity and reorder level, never stored on its own
type StockStatus string

const (
	StockInStock    StockStatus = "in-stock"
	StockLowStock   StockStatus = "low-stock"
	StockOutOfStock StockStatus = "out-of-stock"
)

// StockStatusFor is the single rule for stock status
func StockStatusFor(quantity, reorderLevel int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOutOfStock
	case quantity <= reorderLevel:
		return StockLowStock
	default:
		return StockInStock
	}
}

// InventoryItem is a consumable tracked per workspace
type InventoryItem struct {
	ID            int64
	WorkspaceID   int64
	Name          string
	SKU           *string
	Category      *string
	Quantity      int
	ReorderLevel  int
	UnitCost      float64
	Supplier      *string
	Location      *string
	Notes         *string
	LastRestocked *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Status recomputes the stock status from the current quantity
func (i *InventoryItem) Status() StockStatus {
	return StockStatusFor(i.Quantity, i.ReorderLevel)
}

// Value returns quantity multiplied by unit cost
func (i *InventoryItem) Value() float64 {
	return float64(i.Quantity) * i.UnitCost
}

// ConsumptionRule says how many units of an item one completed booking of a service type uses
type ConsumptionRule struct {
	ServiceTypeID      int64
	InventoryItemID    int64
	QuantityPerBooking int
}

// StockShortage is a non-fatal warning raised when consumption hits zero stock
type StockShortage struct {
	ItemID    int64
	ItemName  string
	Required  int
	Available int
}

func (s StockShortage) Error() string {
	return fmt.Sprintf("%s: item %d (%s) required %d, available %d",
		ErrInsufficientStock, s.ItemID, s.ItemName, s.Required, s.Available)
}

func (s StockShortage) Unwrap() error {
	return ErrInsufficientStock
}
