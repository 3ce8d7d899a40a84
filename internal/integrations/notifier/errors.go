package notifier

import "errors"

var (
	// ErrConnect возвращается, если не удалось подключиться к RabbitMQ
	ErrConnect = errors.New("notifier: failed to connect to broker")

	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("notifier: failed to marshal event")

	// ErrPublish возвращается при ошибке отправки события
	ErrPublish = errors.New("notifier: failed to publish event")
)
