package bookings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/provider"
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings"
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings/models"
	"github.com/m04kA/QuickServe-BookingService/pkg/ptr"
)

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, customerID, status)
	if b := args.Get(0); b != nil {
		return b.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) GetByProviderID(ctx context.Context, providerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, providerID, status)
	if b := args.Get(0); b != nil {
		return b.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) GetProfileIDByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking() *domain.Booking {
	return &domain.Booking{
		ID:           10,
		ServiceID:    5,
		ProviderID:   7,
		CustomerID:   101,
		TotalPrice:   100,
		Status:       domain.StatusPending,
		ServiceTitle: "Haircut",
	}
}

func TestService_GetByID_Access(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   domain.Actor
		profile int64
		wantErr error
	}{
		{name: "customer of booking", actor: domain.Actor{UserID: 101, Role: domain.RoleCustomer}},
		{name: "other customer", actor: domain.Actor{UserID: 102, Role: domain.RoleCustomer}, wantErr: bookings.ErrAccessDenied},
		{name: "provider of booking", actor: domain.Actor{UserID: 201, Role: domain.RoleProvider}, profile: 7},
		{name: "other provider", actor: domain.Actor{UserID: 202, Role: domain.RoleProvider}, profile: 8, wantErr: bookings.ErrAccessDenied},
		{name: "admin", actor: domain.Actor{UserID: 1, Role: domain.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{}
			directory := &mockDirectory{}
			repo.On("GetByID", ctx, int64(10)).Return(booking(), nil)
			if tt.profile != 0 {
				directory.On("GetProfileIDByUserID", ctx, tt.actor.UserID).Return(tt.profile, nil)
			}

			svc := bookings.NewService(repo, directory, nopLogger{})
			resp, err := svc.GetByID(ctx, 10, tt.actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), resp.ID)
			assert.Equal(t, "pending", resp.Status)
			assert.Equal(t, "Haircut", resp.ServiceTitle)
		})
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepository{}
	repo.On("GetByID", ctx, int64(10)).Return(nil, bookingRepo.ErrBookingNotFound)

	svc := bookings.NewService(repo, &mockDirectory{}, nopLogger{})
	_, err := svc.GetByID(ctx, 10, domain.Actor{UserID: 101, Role: domain.RoleCustomer})

	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
}

func TestService_ListForCustomer(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepository{}
	status := domain.StatusPending
	repo.On("GetByCustomerID", ctx, int64(101), &status).Return([]*domain.Booking{booking()}, nil)

	svc := bookings.NewService(repo, &mockDirectory{}, nopLogger{})
	resp, err := svc.ListForCustomer(ctx, &models.ListBookingsRequest{
		Actor:  domain.Actor{UserID: 101, Role: domain.RoleCustomer},
		Status: ptr.Ptr("pending"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(10), resp.Bookings[0].ID)
	repo.AssertExpectations(t)
}

func TestService_ListForCustomer_Errors(t *testing.T) {
	ctx := context.Background()
	svc := bookings.NewService(&mockBookingRepository{}, &mockDirectory{}, nopLogger{})

	_, err := svc.ListForCustomer(ctx, &models.ListBookingsRequest{Actor: domain.Actor{UserID: 201, Role: domain.RoleProvider}})
	assert.ErrorIs(t, err, bookings.ErrAccessDenied)

	_, err = svc.ListForCustomer(ctx, &models.ListBookingsRequest{
		Actor:  domain.Actor{UserID: 101, Role: domain.RoleCustomer},
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, bookings.ErrInvalidInput)
}

func TestService_ListForProvider(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepository{}
	directory := &mockDirectory{}
	directory.On("GetProfileIDByUserID", ctx, int64(201)).Return(int64(7), nil)
	repo.On("GetByProviderID", ctx, int64(7), (*domain.BookingStatus)(nil)).Return([]*domain.Booking{}, nil)

	svc := bookings.NewService(repo, directory, nopLogger{})
	resp, err := svc.ListForProvider(ctx, &models.ListBookingsRequest{Actor: domain.Actor{UserID: 201, Role: domain.RoleProvider}})

	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
	repo.AssertExpectations(t)
}

func TestService_ListForProvider_NoProfile(t *testing.T) {
	ctx := context.Background()
	directory := &mockDirectory{}
	directory.On("GetProfileIDByUserID", ctx, int64(201)).Return(int64(0), providerRepo.ErrProfileNotFound)

	svc := bookings.NewService(&mockBookingRepository{}, directory, nopLogger{})
	_, err := svc.ListForProvider(ctx, &models.ListBookingsRequest{Actor: domain.Actor{UserID: 201, Role: domain.RoleProvider}})

	assert.ErrorIs(t, err, bookings.ErrProfileNotFound)
}

func TestService_ListForProvider_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := &mockBookingRepository{}
	directory := &mockDirectory{}
	directory.On("GetProfileIDByUserID", ctx, int64(201)).Return(int64(7), nil)
	repo.On("GetByProviderID", ctx, int64(7), (*domain.BookingStatus)(nil)).Return(nil, errors.New("boom"))

	svc := bookings.NewService(repo, directory, nopLogger{})
	_, err := svc.ListForProvider(ctx, &models.ListBookingsRequest{Actor: domain.Actor{UserID: 201, Role: domain.RoleProvider}})

	assert.ErrorIs(t, err, bookings.ErrInternal)
}
