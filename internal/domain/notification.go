package domain

import "time"

// NotificationCategory категория уведомления
type NotificationCategory string

const (
	CategoryBooking NotificationCategory = "booking"
	CategoryMessage NotificationCategory = "message"
	CategorySystem  NotificationCategory = "system"
)

// IsValid returns true for booking, message and system
func (c NotificationCategory) IsValid() bool {
	switch c {
	case CategoryBooking, CategoryMessage, CategorySystem:
		return true
	default:
		return false
	}
}

// Notification уведомление пользователю
type Notification struct {
	ID        int64
	UserID    int64 // ID пользователя-получателя
	Title     string
	Message   string
	Category  NotificationCategory
	Link      string // Пустая строка - без ссылки
	IsRead    bool
	CreatedAt time.Time
}
