package domain

import "fmt"

// Transition допустимый переход статуса бронирования
// Описывает, кто может его выполнить и какое уведомление получает вторая сторона
type Transition struct {
	From      BookingStatus
	To        BookingStatus
	Actor     Role // Кто выполняет переход (всегда сторона бронирования)
	Recipient Role // Кто получает уведомление

	Title         string
	MessageFormat string // Принимает название услуги
	Link          string
}

// Message формирует текст уведомления для услуги с указанным названием
func (t Transition) Message(serviceTitle string) string {
	return fmt.Sprintf(t.MessageFormat, serviceTitle)
}

// transitions таблица переходов
// Переходов из терминальных статусов нет, администратор переходов не выполняет
var transitions = []Transition{
	{
		From:          StatusPending,
		To:            StatusAccepted,
		Actor:         RoleProvider,
		Recipient:     RoleCustomer,
		Title:         "Booking Accepted",
		MessageFormat: `Your booking for "%s" has been accepted.`,
		Link:          LinkCustomerBookings,
	},
	{
		From:          StatusPending,
		To:            StatusRejected,
		Actor:         RoleProvider,
		Recipient:     RoleCustomer,
		Title:         "Booking Rejected",
		MessageFormat: `Your booking for "%s" has been rejected.`,
		Link:          LinkCustomerBookings,
	},
	{
		From:          StatusAccepted,
		To:            StatusCompleted,
		Actor:         RoleProvider,
		Recipient:     RoleCustomer,
		Title:         "Booking Completed",
		MessageFormat: `Your service for "%s" has been marked as completed.`,
		Link:          LinkCustomerBookings,
	},
	{
		From:          StatusPending,
		To:            StatusCancelled,
		Actor:         RoleCustomer,
		Recipient:     RoleProvider,
		Title:         "Booking Cancelled",
		MessageFormat: `The customer has cancelled the booking for "%s"`,
		Link:          LinkProviderBookings,
	},
}

// LookupTransition ищет переход (from -> to) для роли
func LookupTransition(role Role, from, to BookingStatus) (Transition, bool) {
	for _, t := range transitions {
		if t.Actor == role && t.From == from && t.To == to {
			return t, true
		}
	}
	return Transition{}, false
}

// RoleCanSet returns true if at least one transition of the role leads to the status
// Статус, который роль не может установить ни из одного состояния, считается запрещённым действием
func RoleCanSet(role Role, to BookingStatus) bool {
	for _, t := range transitions {
		if t.Actor == role && t.To == to {
			return true
		}
	}
	return false
}

// CanTransition решает, может ли пользователь с ролью role перевести бронирование из from в to
// isOwner - является ли пользователь стороной бронирования (владельцем профиля исполнителя или клиентом)
func CanTransition(role Role, isOwner bool, from, to BookingStatus) bool {
	if !isOwner {
		return false
	}
	if !from.IsValid() || !to.IsValid() || from.IsTerminal() {
		return false
	}
	_, ok := LookupTransition(role, from, to)
	return ok
}

// Transitions возвращает копию таблицы переходов
func Transitions() []Transition {
	out := make([]Transition, len(transitions))
	copy(out, transitions)
	return out
}
