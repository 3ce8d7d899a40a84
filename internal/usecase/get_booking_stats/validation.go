package get_booking_stats

import (
	"fmt"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.WorkspaceID <= 0 {
		return fmt.Errorf("%w: workspace_id must be positive", ErrInvalidInput)
	}
	if req.Days < 0 || req.Days > domain.MaxTrendDays {
		return fmt.Errorf("%w: days must be within 0..%d", ErrInvalidInput, domain.MaxTrendDays)
	}
	return nil
}
