package broker

import "errors"

var (
	// ErrConnect возвращается, если не удалось подключиться к брокеру
	ErrConnect = errors.New("broker publisher: failed to connect")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("broker publisher: failed to publish")

	// ErrClosed возвращается при публикации после закрытия
	ErrClosed = errors.New("broker publisher: closed")
)
