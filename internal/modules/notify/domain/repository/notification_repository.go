package repository

import (
	"context"

	"NoteLink/internal/modules/notify/domain/entity"
)

type NotificationRepository interface {
	// Create 持久化通知并回填自增 id 与时间戳
	Create(ctx context.Context, notif *entity.Notification) error

	GetById(ctx context.Context, id int64) (*entity.Notification, error)

	// MarkRead 幂等：已读再标记仍然成功，不改变状态
	MarkRead(ctx context.Context, id int64) error

	// MarkAllRead 按发送方类别批量已读，永远不会跨类别
	MarkAllRead(ctx context.Context, recipientId string, sender string) error

	CountUnread(ctx context.Context, recipientId string) (int64, error)

	// List 按 created_at 倒序分页，sender 为空表示不过滤类别
	// 返回当前页数据与总条数
	List(ctx context.Context, recipientId string, sender string, page int, pageSize int) ([]entity.Notification, int64, error)

	// Delete 硬删除
	Delete(ctx context.Context, id int64) error
}
