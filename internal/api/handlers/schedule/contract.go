package schedule

import (
	"context"

	"github.com/m04kA/SMC-ResourceBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context, workspaceID int64) (*models.ScheduleResponse, error)
	Replace(ctx context.Context, workspaceID int64, req *models.ScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
