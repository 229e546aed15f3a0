package create_booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/QuickServe-BookingService/internal/api/handlers/create_booking"
	"github.com/m04kA/QuickServe-BookingService/internal/api/middleware"
	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	createBooking "github.com/m04kA/QuickServe-BookingService/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var customer = domain.Actor{UserID: 101, Role: domain.RoleCustomer}

func post(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req = req.WithContext(middleware.WithActor(req.Context(), customer))

	w := httptest.NewRecorder()
	create_booking.NewHandler(uc, nopLogger{}).Handle(w, req)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &createBooking.Request{Actor: customer, ServiceID: 5}).
		Return(&createBooking.Response{
			ID:           42,
			ServiceID:    5,
			ProviderID:   7,
			CustomerID:   101,
			TotalPrice:   100,
			Status:       "pending",
			ServiceTitle: "Haircut",
			CreatedAt:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		}, nil)

	w := post(uc, `{"serviceId":5}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body create_booking.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, 100.0, body.TotalPrice)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, "2025-03-01T10:00:00Z", body.CreatedAt)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "service not found", body: `{"serviceId":5}`, err: createBooking.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "not a customer", body: `{"serviceId":5}`, err: createBooking.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "internal", body: `{"serviceId":5}`, err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
		{name: "missing service", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "long description", body: `{"serviceId":5,"description":"` + strings.Repeat("a", 1001) + `"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			w := post(uc, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
