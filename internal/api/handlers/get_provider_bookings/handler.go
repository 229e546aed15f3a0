package get_provider_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/QuickServe-BookingService/internal/api/handlers"
	"github.com/m04kA/QuickServe-BookingService/internal/api/middleware"
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings"
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings/models"
)

const (
	msgMissingUser     = "отсутствует пользователь"
	msgInvalidStatus   = "некорректный статус в фильтре"
	msgProfileNotFound = "профиль исполнителя не найден"
	msgForbidden       = "доступно только исполнителям"
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

// Handle GET /api/v1/bookings/provider
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/provider - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.ListForProvider(r.Context(), &models.ListBookingsRequest{
		Actor:  actor,
		Status: status,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/provider - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrProfileNotFound):
			h.logger.Warn("GET /bookings/provider - Provider profile not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/provider - Failed to get bookings: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/provider - Bookings retrieved successfully: user_id=%d, count=%d",
		actor.UserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
