package domain

import (
	"fmt"
	"time"
)

// BookingStatus статус бронирования
// Закрытое множество значений, получить статус из внешнего ввода можно только через ParseBookingStatus
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
	StatusRejected,
	StatusCompleted,
	StatusCancelled,
}

// TerminalStatuses статусы, из которых переходы невозможны
var TerminalStatuses = []BookingStatus{
	StatusRejected,
	StatusCompleted,
	StatusCancelled,
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// IsValid returns true if the status belongs to the closed set of booking statuses
func (s BookingStatus) IsValid() bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsTerminal returns true for rejected, completed and cancelled
func (s BookingStatus) IsTerminal() bool {
	for _, terminal := range TerminalStatuses {
		if s == terminal {
			return true
		}
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}

// Booking заявка клиента исполнителю на конкретную услугу
type Booking struct {
	ID         int64
	ServiceID  int64
	ProviderID int64 // ID профиля исполнителя (provider_profiles.id), не ID пользователя
	CustomerID int64 // ID пользователя-клиента
	TotalPrice float64
	Status     BookingStatus

	Description *string

	// Денормализованные данные услуги (только для чтения)
	ServiceTitle string

	CreatedAt time.Time
}

// IsTerminal returns true if the booking can no longer change its status
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// IsCustomer returns true if the user is the customer of the booking
func (b *Booking) IsCustomer(userID int64) bool {
	return b.CustomerID == userID
}

// IsProvider returns true if the provider profile fulfils the booking
func (b *Booking) IsProvider(providerProfileID int64) bool {
	return b.ProviderID == providerProfileID
}
