package mark_notification_read_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/QuickServe-BookingService/internal/api/handlers/mark_notification_read"
	"github.com/m04kA/QuickServe-BookingService/internal/api/middleware"
	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	"github.com/m04kA/QuickServe-BookingService/internal/service/notifications"
	"github.com/m04kA/QuickServe-BookingService/internal/service/notifications/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) MarkAsRead(ctx context.Context, id, userID int64) (*models.NotificationResponse, error) {
	args := m.Called(ctx, id, userID)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.NotificationResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("MarkAsRead", mock.Anything, int64(5), int64(11)).Return(&models.NotificationResponse{ID: 5, IsRead: true}, nil)
	svc.On("MarkAsRead", mock.Anything, int64(6), int64(11)).Return(nil, notifications.ErrNotificationNotFound)

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/notifications/{notificationId}/read",
		mark_notification_read.NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/api/v1/notifications/5/read", http.StatusOK},
		{"/api/v1/notifications/6/read", http.StatusNotFound},
		{"/api/v1/notifications/x/read", http.StatusBadRequest},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPut, tt.path, nil)
		req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 11, Role: domain.RoleCustomer}))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)
		assert.Equal(t, tt.wantStatus, w.Code, tt.path)
	}
}
