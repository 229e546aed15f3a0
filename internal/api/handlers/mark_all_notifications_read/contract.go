package mark_all_notifications_read

import (
	"context"

	"github.com/m04kA/QuickServe-BookingService/internal/service/notifications/models"
)

type NotificationService interface {
	MarkAllAsRead(ctx context.Context, userID int64) (*models.MarkAllReadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
