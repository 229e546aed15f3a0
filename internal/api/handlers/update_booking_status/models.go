package update_booking_status

import (
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings/models"
	transitionBooking "github.com/m04kA/QuickServe-BookingService/internal/usecase/transition_booking"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Message        string                  `json:"message"`
	PreviousStatus string                  `json:"previousStatus"`
	Booking        *models.BookingResponse `json:"booking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionBooking.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		Message:        msgStatusUpdated,
		PreviousStatus: string(resp.PreviousStatus),
		Booking:        models.FromDomainBooking(resp.Booking),
	}
}
