package notifications

import (
	"context"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID int64) (*domain.Notification, error)
	MarkAllAsRead(ctx context.Context, userID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
