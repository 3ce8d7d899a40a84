package update_booking_status

import (
	"errors"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrInvalidTransition возвращается, когда переход между статусами запрещен
	ErrInvalidTransition = domain.ErrInvalidTransition

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
