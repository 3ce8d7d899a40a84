package consumption_rules

import (
	"context"

	"github.com/m04kA/SMC-ResourceBookingService/internal/service/inventory/models"
)

type RulesService interface {
	GetRules(ctx context.Context, workspaceID, serviceTypeID int64) (*models.ConsumptionRulesResponse, error)
	ReplaceRules(ctx context.Context, workspaceID, serviceTypeID int64, req *models.ConsumptionRulesRequest) (*models.ConsumptionRulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
