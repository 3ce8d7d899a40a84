package get_booking_stats

import (
	"context"

	getStats "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/get_booking_stats"
)

type GetBookingStatsUseCase interface {
	Execute(ctx context.Context, req *getStats.Request) (*getStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
