package respond

import (
	"time"

	"NoteLink/internal/modules/notify/domain/entity"
)

// NotificationItem 通知的线上形态，字段名沿用既有客户端的约定
type NotificationItem struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	RecipientId string `json:"recipientId"`
	Sender      string `json:"sender"`
	IsRead      int8   `json:"isRead"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func ToNotificationItem(n *entity.Notification) NotificationItem {
	return NotificationItem{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		RecipientId: n.RecipientId,
		Sender:      n.Sender,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.Format(time.RFC3339),
	}
}
