package notifier

import (
	"context"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
)

// Store сохраняет уведомления
type Store interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// Publisher дополнительный канал доставки (брокер сообщений)
type Publisher interface {
	Publish(ctx context.Context, n *domain.Notification) error
}

type Metrics interface {
	IncNotification(result string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
