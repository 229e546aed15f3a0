package transition_booking

import (
	"context"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CompareAndSetStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (bool, error)
}

// ProviderDirectory соответствие пользователей и профилей исполнителей
type ProviderDirectory interface {
	GetProfileIDByUserID(ctx context.Context, userID int64) (int64, error)
	GetUserIDByProfileID(ctx context.Context, profileID int64) (int64, error)
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Metrics интерфейс метрик переходов
type Metrics interface {
	IncBookingTransition(from, to, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
