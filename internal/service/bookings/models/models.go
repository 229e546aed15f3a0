package models

import (
	"time"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение бронирований клиента или исполнителя
type ListBookingsRequest struct {
	Actor  domain.Actor
	Status *string // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	ServiceID   int64   `json:"serviceId"`
	ProviderID  int64   `json:"providerId"`
	CustomerID  int64   `json:"customerId"`
	TotalPrice  float64 `json:"totalPrice"`
	Status      string  `json:"status"`
	Description *string `json:"description,omitempty"`

	// Денормализованные данные
	ServiceTitle string `json:"serviceTitle"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		ServiceID:    b.ServiceID,
		ProviderID:   b.ProviderID,
		CustomerID:   b.CustomerID,
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		Description:  b.Description,
		ServiceTitle: b.ServiceTitle,
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
