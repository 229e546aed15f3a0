package transition_booking

import "github.com/m04kA/QuickServe-BookingService/internal/domain"

// Request модель запроса на смену статуса бронирования
type Request struct {
	BookingID int64
	Status    string // Запрошенный статус в виде строки из запроса
	Actor     domain.Actor
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	Booking        *domain.Booking
	PreviousStatus domain.BookingStatus
}
