package create_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// validateRequest проверяет форму запроса, бизнес-правила проверяет validator
func validateRequest(req *Request) error {
	if req.WorkspaceID <= 0 {
		return fmt.Errorf("%w: workspace_id must be positive", ErrInvalidInput)
	}
	if req.ServiceTypeID <= 0 {
		return fmt.Errorf("%w: service_type_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.AssignedStaff != nil && utf8.RuneCountInString(*req.AssignedStaff) > domain.MaxNameLength {
		return fmt.Errorf("%w: assigned_staff longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}
