package transition_booking

import (
	"fmt"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
)

// validateRequest валидирует входные данные и разбирает запрошенный статус
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req == nil {
		return "", fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return "", fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Actor.UserID <= 0 {
		return "", fmt.Errorf("%w: actor userID must be positive", ErrInvalidInput)
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	return status, nil
}
