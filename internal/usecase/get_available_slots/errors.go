package get_available_slots

import (
	"errors"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

var (
	// ErrUnknownService возвращается, когда тип услуги не найден или деактивирован
	ErrUnknownService = domain.ErrUnknownService

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
