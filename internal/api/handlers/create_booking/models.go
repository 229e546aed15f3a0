package create_booking

import (
	"time"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	createBooking "github.com/m04kA/QuickServe-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   int64   `json:"serviceId" validate:"required,gt=0"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	ServiceID    int64   `json:"serviceId"`
	ProviderID   int64   `json:"providerId"`
	CustomerID   int64   `json:"customerId"`
	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `json:"status"`
	Description  *string `json:"description,omitempty"`
	ServiceTitle string  `json:"serviceTitle"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) *createBooking.Request {
	return &createBooking.Request{
		Actor:       actor,
		ServiceID:   r.ServiceID,
		Description: r.Description,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		ServiceID:    resp.ServiceID,
		ProviderID:   resp.ProviderID,
		CustomerID:   resp.CustomerID,
		TotalPrice:   resp.TotalPrice,
		Status:       resp.Status,
		Description:  resp.Description,
		ServiceTitle: resp.ServiceTitle,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
