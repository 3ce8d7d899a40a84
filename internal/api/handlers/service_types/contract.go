package service_types

import (
	"context"

	"github.com/m04kA/SMC-ResourceBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	Create(ctx context.Context, workspaceID int64, req *models.ServiceTypeRequest) (*models.ServiceTypeResponse, error)
	GetByID(ctx context.Context, workspaceID, id int64) (*models.ServiceTypeResponse, error)
	List(ctx context.Context, workspaceID int64, onlyActive bool) (*models.ServiceTypeListResponse, error)
	Update(ctx context.Context, workspaceID, id int64, req *models.ServiceTypeRequest) (*models.ServiceTypeResponse, error)
	Deactivate(ctx context.Context, workspaceID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
