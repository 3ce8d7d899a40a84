package update_booking_status

import (
	"fmt"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.WorkspaceID <= 0 {
		return fmt.Errorf("%w: workspace_id must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking_id must be positive", ErrInvalidInput)
	}
	if !domain.BookingStatus(req.Status).IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	return nil
}
