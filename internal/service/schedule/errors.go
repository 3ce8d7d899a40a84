package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание рабочего пространства не настроено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrInvalidInput возвращается при некорректном расписании
	ErrInvalidInput = errors.New("invalid schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
