package get_available_slots

import "fmt"

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
	return nil
}
