package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatusFor(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         StockStatus
	}{
		{"zero is out of stock", 0, 5, StockOutOfStock},
		{"zero with zero reorder level", 0, 0, StockOutOfStock},
		{"below reorder level", 3, 5, StockLowStock},
		{"at reorder level is low", 5, 5, StockLowStock},
		{"one above reorder level", 6, 5, StockInStock},
		{"positive with zero reorder level", 1, 0, StockInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockStatusFor(tt.quantity, tt.reorderLevel))
		})
	}
}

func TestInventoryItem_StatusFollowsQuantity(t *testing.T) {
	item := InventoryItem{Quantity: 5, ReorderLevel: 5, UnitCost: 2.5}
	assert.Equal(t, StockLowStock, item.Status())
	assert.Equal(t, 12.5, item.Value())

	item.Quantity = 15
	assert.Equal(t, StockInStock, item.Status())
}

func TestStockShortage_IsInsufficientStock(t *testing.T) {
	var err error = StockShortage{ItemID: 1, ItemName: "gloves", Required: 2, Available: 1}
	assert.True(t, errors.Is(err, ErrInsufficientStock))
	assert.Contains(t, err.Error(), "gloves")
}
