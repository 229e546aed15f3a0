package mark_notification_read

import (
	"context"

	"github.com/m04kA/QuickServe-BookingService/internal/service/notifications/models"
)

type NotificationService interface {
	MarkAsRead(ctx context.Context, id, userID int64) (*models.NotificationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
