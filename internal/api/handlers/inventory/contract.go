package inventory

import (
	"context"

	"github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory/models"
)

type InventoryService interface {
	Create(ctx context.Context, workspaceID int64, req *models.CreateItemRequest) (*models.ItemResponse, error)
	GetByID(ctx context.Context, workspaceID, id int64) (*models.ItemResponse, error)
	List(ctx context.Context, req *models.ListItemsRequest) (*models.ItemListResponse, error)
	LowStock(ctx context.Context, workspaceID int64) (*models.ItemListResponse, error)
	OutOfStock(ctx context.Context, workspaceID int64) (*models.ItemListResponse, error)
	Value(ctx context.Context, workspaceID int64) (*models.ValueResponse, error)
	Update(ctx context.Context, workspaceID, id int64, req *models.UpdateItemRequest) (*models.ItemResponse, error)
	Restock(ctx context.Context, workspaceID, id int64, amount int) (*models.ItemResponse, error)
	Delete(ctx context.Context, workspaceID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
