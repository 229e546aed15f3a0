package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/QuickServe-BookingService/internal/api/handlers"
	"github.com/m04kA/QuickServe-BookingService/internal/api/middleware"
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings"
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings/models"
)

const (
	msgMissingUser   = "отсутствует пользователь"
	msgInvalidStatus = "некорректный статус в фильтре"
	msgForbidden     = "доступно только клиентам"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/my - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	// Получаем status из query параметров (опционально)
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.ListForCustomer(r.Context(), &models.ListBookingsRequest{
		Actor:  actor,
		Status: status,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/my - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/my - Failed to get bookings: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/my - Bookings retrieved successfully: user_id=%d, count=%d",
		actor.UserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
