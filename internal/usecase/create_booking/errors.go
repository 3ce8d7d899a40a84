package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

var (
	// ErrUnknownService возвращается, когда тип услуги не найден или деактивирован
	ErrUnknownService = domain.ErrUnknownService

	// ErrDateInPast возвращается, когда дата раньше текущего дня рабочего пространства
	ErrDateInPast = domain.ErrDateInPast

	// ErrSlotUnavailable возвращается, когда слот вне часов работы или все места заняты
	ErrSlotUnavailable = domain.ErrSlotUnavailable

	// ErrInvalidContact возвращается при отсутствии имени или некорректном email
	ErrInvalidContact = domain.ErrInvalidContact

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// rejectionReason метка для метрики отказов
func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrUnknownService):
		return "unknown_service", true
	case errors.Is(err, ErrDateInPast):
		return "date_in_past", true
	case errors.Is(err, ErrSlotUnavailable):
		return "slot_unavailable", true
	case errors.Is(err, ErrInvalidContact):
		return "invalid_contact", true
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input", true
	}
	return "", false
}
