package mark_all_notifications_read

import (
	"net/http"

	"github.com/m04kA/QuickServe-BookingService/internal/api/handlers"
	"github.com/m04kA/QuickServe-BookingService/internal/api/middleware"
)

const (
	msgMissingUser = "отсутствует пользователь"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/notifications/read-all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /notifications/read-all - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.MarkAllAsRead(r.Context(), userID)
	if err != nil {
		h.logger.Error("PUT /notifications/read-all - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /notifications/read-all - user_id=%d, updated=%d", userID, result.Updated)
	handlers.RespondJSON(w, http.StatusOK, result)
}
