package catalog

import "errors"

var (
	// ErrServiceTypeNotFound возвращается, когда тип услуги не найден
	ErrServiceTypeNotFound = errors.New("service type not found")

	// ErrServiceTypeInUse возвращается при попытке изменить тип услуги, на который уже есть бронирования
	ErrServiceTypeInUse = errors.New("service type is referenced by bookings and can only be deactivated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
