package transition_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrProfileNotFound возвращается, когда у исполнителя нет профиля
	ErrProfileNotFound = errors.New("transition_booking: provider profile not found")

	// ErrForbidden возвращается, когда пользователь не является стороной бронирования
	// или его роль не может устанавливать запрошенный статус
	ErrForbidden = errors.New("transition_booking: forbidden")

	// ErrInvalidStatus возвращается для неизвестного статуса
	ErrInvalidStatus = errors.New("transition_booking: invalid status")

	// ErrInvalidTransition возвращается, когда переход из текущего статуса недопустим
	ErrInvalidTransition = errors.New("transition_booking: invalid status transition")

	// ErrConflict возвращается, когда статус бронирования изменился конкурентно
	ErrConflict = errors.New("transition_booking: booking status changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_booking: internal error")
)
