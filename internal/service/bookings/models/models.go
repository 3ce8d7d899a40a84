package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Представления списка бронирований
const (
	ViewAll      = "all"
	ViewUpcoming = "upcoming"
	ViewToday    = "today"
)

// Request модели

// ListBookingsRequest запрос на получение бронирований рабочего пространства
type ListBookingsRequest struct {
	WorkspaceID int64
	View        string     // all | upcoming | today
	Status      *string    // фильтр по статусу (опционально)
	Query       *string    // поиск по имени/email клиента и названию услуги
	Date        *time.Time // бронирования на дату (опционально)
}

// Response модели

// CustomerResponse контактные данные клиента на момент бронирования
type CustomerResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64            `json:"id"`
	WorkspaceID   int64            `json:"workspaceId"`
	ServiceTypeID int64            `json:"serviceTypeId"`
	ServiceName   string           `json:"serviceName"`
	Customer      CustomerResponse `json:"customer"`
	BookingDate   string           `json:"bookingDate"` // "2025-10-15"
	StartTime     string           `json:"startTime"`   // "10:00"
	EndTime       string           `json:"endTime"`     // "10:30"
	Status        string           `json:"status"`
	Notes         *string          `json:"notes,omitempty"`
	AssignedStaff *string          `json:"assignedStaff,omitempty"`
	TotalPrice    float64          `json:"totalPrice"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StaffOccupancyItem загрузка одного сотрудника
type StaffOccupancyItem struct {
	Staff         string `json:"staff"`
	Bookings      int    `json:"bookings"`
	BookedMinutes int    `json:"bookedMinutes"`
}

// StaffOccupancyResponse загрузка сотрудников на дату
type StaffOccupancyResponse struct {
	Date  string               `json:"date"`
	Staff []StaffOccupancyItem `json:"staff"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		WorkspaceID:   b.WorkspaceID,
		ServiceTypeID: b.ServiceTypeID,
		ServiceName:   b.ServiceName,
		Customer: CustomerResponse{
			Name:  b.Customer.Name,
			Email: b.Customer.Email,
			Phone: b.Customer.Phone,
		},
		BookingDate:   b.Date.Format(domain.DateFormat),
		StartTime:     b.Slot.Start.String(),
		EndTime:       b.Slot.End.String(),
		Status:        string(b.Status),
		Notes:         b.Notes,
		AssignedStaff: b.AssignedStaff,
		TotalPrice:    b.TotalPrice,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for i := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(&bookings[i]))
	}

	return resp
}

// FromDomainStaffOccupancy конвертирует загрузку сотрудников в DTO
func FromDomainStaffOccupancy(date time.Time, occupancy []domain.StaffOccupancy) *StaffOccupancyResponse {
	resp := &StaffOccupancyResponse{
		Date:  date.Format(domain.DateFormat),
		Staff: make([]StaffOccupancyItem, 0, len(occupancy)),
	}
	for _, o := range occupancy {
		resp.Staff = append(resp.Staff, StaffOccupancyItem{
			Staff:         o.Staff,
			Bookings:      o.Bookings,
			BookedMinutes: o.BookedMinutes,
		})
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
