package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/service"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	providers   ProviderDirectory
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	providers ProviderDirectory,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		providers:   providers,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Исполнитель и цена фиксируются из услуги на момент создания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: user=%d, role=%s, service=%d", req.Actor.UserID, req.Actor.Role, req.ServiceID)

	if req.Actor.Role != domain.RoleCustomer {
		uc.logger.Warn("CreateBooking: role %s cannot create bookings", req.Actor.Role)
		return nil, ErrForbidden
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Создаем бронирование со снимком цены и исполнителя
	booking := &domain.Booking{
		ServiceID:   service.ID,
		ProviderID:  service.ProviderID,
		CustomerID:  req.Actor.UserID,
		TotalPrice:  service.Price,
		Status:      domain.StatusPending,
		Description: normalizeDescription(req.Description),
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
	created.ServiceTitle = service.Title

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	// 4. Уведомляем исполнителя
	uc.notifyProvider(context.WithoutCancel(ctx), created)

	return &Response{
		ID:           created.ID,
		ServiceID:    created.ServiceID,
		ProviderID:   created.ProviderID,
		CustomerID:   created.CustomerID,
		TotalPrice:   created.TotalPrice,
		Status:       string(created.Status),
		Description:  created.Description,
		ServiceTitle: created.ServiceTitle,
		CreatedAt:    created.CreatedAt,
	}, nil
}

// notifyProvider отправляет исполнителю уведомление о новой заявке
// Ошибки только логируются: бронирование уже создано
func (uc *UseCase) notifyProvider(ctx context.Context, booking *domain.Booking) {
	userID, err := uc.providers.GetUserIDByProfileID(ctx, booking.ProviderID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to resolve user of provider profile id=%d: %v", booking.ProviderID, err)
		return
	}

	err = uc.notifier.Notify(ctx, domain.Notification{
		UserID:   userID,
		Title:    domain.NewBookingTitle,
		Message:  fmt.Sprintf(domain.NewBookingMessageFormat, booking.ServiceTitle),
		Category: domain.CategoryBooking,
		Link:     domain.LinkProviderBookings,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to notify provider user id=%d: %v", userID, err)
	}
}
