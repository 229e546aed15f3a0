package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено среди уведомлений пользователя
	ErrNotificationNotFound = errors.New("notifications: notification not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("notifications: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications: internal error")
)
