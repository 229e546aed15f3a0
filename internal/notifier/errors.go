package notifier

import "errors"

var (
	// ErrInvalidNotification возвращается для уведомления без получателя, заголовка или с неизвестной категорией
	ErrInvalidNotification = errors.New("notifier: invalid notification")

	// ErrQueueFull возвращается, когда очередь переполнена и уведомление отброшено
	ErrQueueFull = errors.New("notifier: queue is full")

	// ErrStopped возвращается после остановки диспетчера
	ErrStopped = errors.New("notifier: dispatcher stopped")
)
