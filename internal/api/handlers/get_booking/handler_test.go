package get_booking_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/QuickServe-BookingService/internal/api/handlers/get_booking"
	"github.com/m04kA/QuickServe-BookingService/internal/api/middleware"
	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings"
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, actor)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var customer = domain.Actor{UserID: 101, Role: domain.RoleCustomer}

func serve(svc *mockService, path string, actor *domain.Actor) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", get_booking.NewHandler(svc, nopLogger{}).Handle).
		Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), *actor))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, int64(10), customer).
		Return(&models.BookingResponse{ID: 10, CustomerID: 101, Status: "pending"}, nil)

	w := serve(svc, "/api/v1/bookings/10", &customer)

	require.Equal(t, http.StatusOK, w.Code)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(10), body.ID)
	assert.Equal(t, "pending", body.Status)
	svc.AssertExpectations(t)
}

func TestHandle_BadRequest(t *testing.T) {
	svc := &mockService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/bookings/abc", &customer).Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/bookings/0", &customer).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(svc, "/api/v1/bookings/10", nil).Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{fmt.Errorf("%w: id=10", bookings.ErrBookingNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: user=101", bookings.ErrProfileNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: booking=10", bookings.ErrAccessDenied), http.StatusForbidden},
		{fmt.Errorf("%w: db down", bookings.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetByID", mock.Anything, int64(10), customer).Return(nil, tt.err)

			w := serve(svc, "/api/v1/bookings/10", &customer)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
