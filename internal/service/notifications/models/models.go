package models

import (
	"time"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      *string   `json:"link,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// MarkAllReadResponse ответ на отметку всех уведомлений прочитанными
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}

	resp := &NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Category),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}

	if n.Link != "" {
		link := n.Link
		resp.Link = &link
	}

	return resp
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for _, n := range notifications {
		item := FromDomainNotification(n)
		if item == nil {
			continue
		}
		if !item.IsRead {
			resp.UnreadCount++
		}
		resp.Notifications = append(resp.Notifications, *item)
	}

	return resp
}
