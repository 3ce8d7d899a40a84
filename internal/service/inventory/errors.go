package inventory

import (
	"errors"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

var (
	// ErrItemNotFound возвращается, когда позиция склада не найдена
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrServiceTypeNotFound возвращается, когда тип услуги для правил списания не найден
	ErrServiceTypeNotFound = errors.New("service type not found")

	// ErrInvalidRestockAmount возвращается при неположительном количестве пополнения
	ErrInvalidRestockAmount = domain.ErrInvalidRestockAmount

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
