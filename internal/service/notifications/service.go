package notifications

import (
	"context"
	"errors"
	"fmt"

	notificationRepo "github.com/m04kA/QuickServe-BookingService/internal/infra/storage/notification"
	"github.com/m04kA/QuickServe-BookingService/internal/service/notifications/models"
)

// Service сервис уведомлений пользователя
type Service struct {
	repo   NotificationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(repo NotificationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает уведомления пользователя, новые первыми
func (s *Service) List(ctx context.Context, userID int64) (*models.NotificationListResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(items), nil
}

// MarkAsRead отмечает уведомление пользователя прочитанным
func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) (*models.NotificationResponse, error) {
	if id <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	n, err := s.repo.MarkAsRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkAsRead: notification id=%d not found for user=%d", id, userID)
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("MarkAsRead: repository error for notification id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: MarkAsRead - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotification(n), nil
}

// MarkAllAsRead отмечает все уведомления пользователя прочитанными
func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) (*models.MarkAllReadResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	updated, err := s.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		s.logger.Error("MarkAllAsRead: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: MarkAllAsRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllAsRead: %d notifications marked as read for user=%d", updated, userID)
	return &models.MarkAllReadResponse{Updated: updated}, nil
}
