package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
	"github.com/m04kA/SMC-ResourceBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	WorkspaceID   int64            // ID рабочего пространства
	ServiceTypeID int64            // ID типа услуги
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string // Дополнительные заметки (опционально)
	AssignedStaff *string // Сотрудник (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	WorkspaceID   int64
	ServiceTypeID int64
	Customer      domain.Customer
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        domain.BookingStatus
	ServiceName   string  // Название услуги на момент бронирования
	TotalPrice    float64 // Цена на момент бронирования
	Notes         *string
	AssignedStaff *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		WorkspaceID:   b.WorkspaceID,
		ServiceTypeID: b.ServiceTypeID,
		Customer:      b.Customer,
		BookingDate:   b.Date,
		StartTime:     b.Slot.Start,
		EndTime:       b.Slot.End,
		Status:        b.Status,
		ServiceName:   b.ServiceName,
		TotalPrice:    b.TotalPrice,
		Notes:         b.Notes,
		AssignedStaff: b.AssignedStaff,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
