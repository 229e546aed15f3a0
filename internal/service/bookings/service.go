package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/provider"
	"github.com/m04kA/QuickServe-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	providers   ProviderDirectory
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	providers ProviderDirectory,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		providers:   providers,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Бронирование видят его клиент, исполнитель и администратор
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d, role=%s", id, actor.UserID, actor.Role)

	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkAccess(ctx, booking, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// ListForCustomer получает бронирования клиента, новые первыми
func (s *Service) ListForCustomer(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListForCustomer: fetching bookings for user=%d, status=%v", req.Actor.UserID, req.Status)

	if req.Actor.Role != domain.RoleCustomer {
		return nil, ErrAccessDenied
	}

	status, err := parseStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("ListForCustomer: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.Actor.UserID, status)
	if err != nil {
		s.logger.Error("ListForCustomer: repository error for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: ListForCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForCustomer: fetched %d bookings for user=%d", len(bookings), req.Actor.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListForProvider получает бронирования профиля исполнителя, новые первыми
func (s *Service) ListForProvider(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListForProvider: fetching bookings for user=%d, status=%v", req.Actor.UserID, req.Status)

	if req.Actor.Role != domain.RoleProvider {
		return nil, ErrAccessDenied
	}

	status, err := parseStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("ListForProvider: %v", err)
		return nil, err
	}

	profileID, err := s.resolveProfile(ctx, req.Actor.UserID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByProviderID(ctx, profileID, status)
	if err != nil {
		s.logger.Error("ListForProvider: repository error for profile=%d: %v", profileID, err)
		return nil, fmt.Errorf("%w: ListForProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForProvider: fetched %d bookings for profile=%d", len(bookings), profileID)
	return models.FromDomainBookingList(bookings), nil
}

// checkAccess проверяет, что пользователь может видеть бронирование
func (s *Service) checkAccess(ctx context.Context, booking *domain.Booking, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleCustomer:
		if booking.IsCustomer(actor.UserID) {
			return nil
		}
		return ErrAccessDenied
	case domain.RoleProvider:
		profileID, err := s.resolveProfile(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if booking.IsProvider(profileID) {
			return nil
		}
		return ErrAccessDenied
	default:
		return ErrAccessDenied
	}
}

func (s *Service) resolveProfile(ctx context.Context, userID int64) (int64, error) {
	profileID, err := s.providers.GetProfileIDByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProfileNotFound) {
			s.logger.Warn("user id=%d has no provider profile", userID)
			return 0, ErrProfileNotFound
		}
		s.logger.Error("failed to resolve provider profile for user id=%d: %v", userID, err)
		return 0, fmt.Errorf("%w: resolve provider profile: %v", ErrInternal, err)
	}
	return profileID, nil
}

func parseStatusFilter(raw *string) (*domain.BookingStatus, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	status, err := domain.ParseBookingStatus(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &status, nil
}
