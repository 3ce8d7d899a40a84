package update_booking_status

import (
	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

// Request модель запроса на смену статуса
type Request struct {
	WorkspaceID int64
	BookingID   int64
	Status      string // Новый статус
}

// Response бронирование после перехода и предупреждения склада
type Response struct {
	Booking        domain.Booking
	PreviousStatus domain.BookingStatus
	// Warnings непустой, если при завершении не хватило расходников.
	// Переход при этом выполнен.
	Warnings []domain.StockShortage
}
