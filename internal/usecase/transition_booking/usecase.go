package transition_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/provider"
)

// Значения метки result для метрики переходов
const (
	resultSuccess           = "success"
	resultNotFound          = "not_found"
	resultForbidden         = "forbidden"
	resultInvalidTransition = "invalid_transition"
	resultConflict          = "conflict"
	resultError             = "error"
)

// UseCase use case смены статуса бронирования
type UseCase struct {
	bookingRepo BookingRepository
	providers   ProviderDirectory
	notifier    Notifier
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providers ProviderDirectory,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		providers:   providers,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute переводит бронирование в запрошенный статус
// Порядок проверок: статус, существование, принадлежность, допустимость перехода, применение.
// Уведомление второй стороне отправляется после сохранения, его ошибки не влияют на результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	// 0. Валидация входных данных (до обращения к хранилищу)
	next, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("Transition: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("Transition: booking=%d, user=%d, role=%s, status=%s",
		req.BookingID, req.Actor.UserID, req.Actor.Role, next)

	var from domain.BookingStatus
	defer func() {
		uc.observe(from, next, err)
	}()

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("Transition: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("Transition: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	from = booking.Status

	// 2. Проверяем, что пользователь является стороной бронирования
	if err := uc.checkOwnership(ctx, booking, req.Actor); err != nil {
		return nil, err
	}

	// 3. Проверяем допустимость перехода
	if !domain.RoleCanSet(req.Actor.Role, next) {
		uc.logger.Warn("Transition: role %s may not set status %s on booking id=%d",
			req.Actor.Role, next, booking.ID)
		return nil, fmt.Errorf("%w: %s cannot set status %s", ErrForbidden, req.Actor.Role, next)
	}

	if booking.IsTerminal() {
		uc.logger.Warn("Transition: booking id=%d is already %s", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: booking is already %s", ErrInvalidTransition, booking.Status)
	}

	if !domain.CanTransition(req.Actor.Role, true, booking.Status, next) {
		uc.logger.Warn("Transition: %s -> %s is not allowed for %s, booking id=%d",
			booking.Status, next, req.Actor.Role, booking.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
	}

	// 4. Применяем переход, только если статус не изменился с момента чтения
	swapped, err := uc.bookingRepo.CompareAndSetStatus(ctx, booking.ID, booking.Status, next)
	if err != nil {
		uc.logger.Error("Transition: failed to update booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}
	if !swapped {
		uc.logger.Warn("Transition: booking id=%d changed concurrently, expected status %s", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: expected status %s", ErrConflict, booking.Status)
	}

	previous := booking.Status
	booking.Status = next

	uc.logger.Info("Transition: booking id=%d %s -> %s", booking.ID, previous, next)

	// 5. Уведомляем вторую сторону, даже если клиент уже отключился
	uc.notifyCounterparty(context.WithoutCancel(ctx), booking, req.Actor.Role, previous)

	return &Response{
		Booking:        booking,
		PreviousStatus: previous,
	}, nil
}

// checkOwnership проверяет, что пользователь является стороной бронирования
func (uc *UseCase) checkOwnership(ctx context.Context, booking *domain.Booking, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleProvider:
		profileID, err := uc.providers.GetProfileIDByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, providerRepo.ErrProfileNotFound) {
				uc.logger.Warn("Transition: user id=%d has no provider profile", actor.UserID)
				return ErrProfileNotFound
			}
			uc.logger.Error("Transition: failed to resolve provider profile for user id=%d: %v", actor.UserID, err)
			return fmt.Errorf("%w: failed to resolve provider profile: %v", ErrInternal, err)
		}
		if !booking.IsProvider(profileID) {
			uc.logger.Warn("Transition: provider profile id=%d does not own booking id=%d", profileID, booking.ID)
			return ErrForbidden
		}
		return nil

	case domain.RoleCustomer:
		if !booking.IsCustomer(actor.UserID) {
			uc.logger.Warn("Transition: user id=%d is not the customer of booking id=%d", actor.UserID, booking.ID)
			return ErrForbidden
		}
		return nil

	default:
		uc.logger.Warn("Transition: role %q cannot change booking status", actor.Role)
		return fmt.Errorf("%w: role %q", ErrForbidden, actor.Role)
	}
}

// notifyCounterparty отправляет уведомление второй стороне бронирования
// Ошибки только логируются: переход уже сохранён
func (uc *UseCase) notifyCounterparty(ctx context.Context, booking *domain.Booking, role domain.Role, from domain.BookingStatus) {
	t, ok := domain.LookupTransition(role, from, booking.Status)
	if !ok {
		return
	}

	var recipientID int64
	switch t.Recipient {
	case domain.RoleCustomer:
		recipientID = booking.CustomerID
	case domain.RoleProvider:
		userID, err := uc.providers.GetUserIDByProfileID(ctx, booking.ProviderID)
		if err != nil {
			uc.logger.Error("Transition: failed to resolve user of provider profile id=%d: %v", booking.ProviderID, err)
			return
		}
		recipientID = userID
	default:
		return
	}

	err := uc.notifier.Notify(ctx, domain.Notification{
		UserID:   recipientID,
		Title:    t.Title,
		Message:  t.Message(booking.ServiceTitle),
		Category: domain.CategoryBooking,
		Link:     t.Link,
	})
	if err != nil {
		uc.logger.Error("Transition: failed to notify user id=%d about booking id=%d: %v", recipientID, booking.ID, err)
	}
}

func (uc *UseCase) observe(from, to domain.BookingStatus, err error) {
	if uc.metrics == nil {
		return
	}

	result := resultSuccess
	switch {
	case err == nil:
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrProfileNotFound):
		result = resultNotFound
	case errors.Is(err, ErrForbidden):
		result = resultForbidden
	case errors.Is(err, ErrInvalidTransition):
		result = resultInvalidTransition
	case errors.Is(err, ErrConflict):
		result = resultConflict
	default:
		result = resultError
	}

	uc.metrics.IncBookingTransition(string(from), string(to), result)
}
