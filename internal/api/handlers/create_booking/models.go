package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-ResourceBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceTypeID int64   `json:"serviceTypeId"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	StartTime     string  `json:"startTime"`   // "10:00"
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	AssignedStaff *string `json:"assignedStaff,omitempty"`
}

// CustomerResponse контакт клиента
type CustomerResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64            `json:"id"`
	WorkspaceID   int64            `json:"workspaceId"`
	ServiceTypeID int64            `json:"serviceTypeId"`
	ServiceName   string           `json:"serviceName"`
	Customer      CustomerResponse `json:"customer"`
	BookingDate   string           `json:"bookingDate"`
	StartTime     string           `json:"startTime"`
	EndTime       string           `json:"endTime"`
	Status        string           `json:"status"`
	TotalPrice    float64          `json:"totalPrice"`
	Notes         *string          `json:"notes,omitempty"`
	AssignedStaff *string          `json:"assignedStaff,omitempty"`
	CreatedAt     string           `json:"createdAt"`
	UpdatedAt     string           `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(workspaceID int64) (*createBooking.Request, error) {
	bookingDate, err := handlers.ParseDate(r.BookingDate)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		WorkspaceID:   workspaceID,
		ServiceTypeID: r.ServiceTypeID,
		Date:          bookingDate,
		StartTime:     startTime,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		AssignedStaff: r.AssignedStaff,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		WorkspaceID:   resp.WorkspaceID,
		ServiceTypeID: resp.ServiceTypeID,
		ServiceName:   resp.ServiceName,
		Customer: CustomerResponse{
			Name:  resp.Customer.Name,
			Email: resp.Customer.Email,
			Phone: resp.Customer.Phone,
		},
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		Status:        string(resp.Status),
		TotalPrice:    resp.TotalPrice,
		Notes:         resp.Notes,
		AssignedStaff: resp.AssignedStaff,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
