package models

import (
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// Request модели

// CreateItemRequest данные новой позиции склада
type CreateItemRequest struct {
	Name         string  `json:"name"`
	SKU          *string `json:"sku,omitempty"`
	Category     *string `json:"category,omitempty"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorderLevel"`
	UnitCost     float64 `json:"unitCost"`
	Supplier     *string `json:"supplier,omitempty"`
	Location     *string `json:"location,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// UpdateItemRequest полная замена редактируемых полей позиции
type UpdateItemRequest = CreateItemRequest

// ListItemsRequest фильтр списка позиций
type ListItemsRequest struct {
	WorkspaceID int64
	Query       *string
	Category    *string
}

// ConsumptionRuleDTO правило списания одной позиции
type ConsumptionRuleDTO struct {
	InventoryItemID    int64 `json:"inventoryItemId"`
	QuantityPerBooking int   `json:"quantityPerBooking"`
}

// ConsumptionRulesRequest полный набор правил списания типа услуги
type ConsumptionRulesRequest struct {
	Rules []ConsumptionRuleDTO `json:"rules"`
}

// Response модели

// ItemResponse ответ с позицией склада, статус вычисляется при каждом чтении
type ItemResponse struct {
	ID            int64      `json:"id"`
	WorkspaceID   int64      `json:"workspaceId"`
	Name          string     `json:"name"`
	SKU           *string    `json:"sku,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Quantity      int        `json:"quantity"`
	ReorderLevel  int        `json:"reorderLevel"`
	Status        string     `json:"status"`
	UnitCost      float64    `json:"unitCost"`
	Value         float64    `json:"value"`
	Supplier      *string    `json:"supplier,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	LastRestocked *time.Time `json:"lastRestocked,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ItemListResponse ответ со списком позиций
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// ValueResponse суммарная стоимость склада
type ValueResponse struct {
	TotalValue      float64 `json:"totalValue"`
	ItemCount       int     `json:"itemCount"`
	LowStockCount   int     `json:"lowStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
}

// ConsumptionRulesResponse правила списания типа услуги
type ConsumptionRulesResponse struct {
	ServiceTypeID int64                `json:"serviceTypeId"`
	Rules         []ConsumptionRuleDTO `json:"rules"`
}

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(item *domain.InventoryItem) *ItemResponse {
	if item == nil {
		return nil
	}
	return &ItemResponse{
		ID:            item.ID,
		WorkspaceID:   item.WorkspaceID,
		Name:          item.Name,
		SKU:           item.SKU,
		Category:      item.Category,
		Quantity:      item.Quantity,
		ReorderLevel:  item.ReorderLevel,
		Status:        string(item.Status()),
		UnitCost:      item.UnitCost,
		Value:         item.Value(),
		Supplier:      item.Supplier,
		Location:      item.Location,
		Notes:         item.Notes,
		LastRestocked: item.LastRestocked,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// FromDomainItemList конвертирует список domain моделей в DTO
func FromDomainItemList(items []domain.InventoryItem) *ItemListResponse {
	resp := &ItemListResponse{Items: make([]ItemResponse, 0, len(items))}
	for i := range items {
		resp.Items = append(resp.Items, *FromDomainItem(&items[i]))
	}
	return resp
}

// FromDomainRules конвертирует правила списания в DTO
func FromDomainRules(serviceTypeID int64, rules []domain.ConsumptionRule) *ConsumptionRulesResponse {
	resp := &ConsumptionRulesResponse{
		ServiceTypeID: serviceTypeID,
		Rules:         make([]ConsumptionRuleDTO, 0, len(rules)),
	}
	for _, r := range rules {
		resp.Rules = append(resp.Rules, ConsumptionRuleDTO{
			InventoryItemID:    r.InventoryItemID,
			QuantityPerBooking: r.QuantityPerBooking,
		})
	}
	return resp
}
