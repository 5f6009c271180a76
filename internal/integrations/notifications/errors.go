package notifications

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("notifications: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("notifications: failed to publish message")

	// ErrEncode возвращается при ошибке сериализации сообщения
	ErrEncode = errors.New("notifications: failed to encode message")
)
