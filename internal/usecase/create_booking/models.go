package create_booking

import (
	"time"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor       domain.Actor // Клиент, создающий бронирование
	ServiceID   int64        // ID услуги
	Description *string      // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64   // ID созданного бронирования
	ServiceID   int64   // ID услуги
	ProviderID  int64   // ID профиля исполнителя
	CustomerID  int64   // ID клиента
	TotalPrice  float64 // Цена услуги на момент бронирования
	Status      string  // Статус бронирования
	Description *string // Пожелания клиента

	// Денормализованные данные
	ServiceTitle string // Название услуги

	CreatedAt time.Time // Время создания
}
