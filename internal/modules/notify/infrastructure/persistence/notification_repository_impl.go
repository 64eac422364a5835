package persistence

import (
	"context"
	"time"

	"NoteLink/internal/modules/notify/domain/entity"
	"NoteLink/internal/modules/notify/domain/repository"

	"gorm.io/gorm"
)

type notificationRepositoryImpl struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓储实现
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, notif *entity.Notification) error {
	now := time.Now()
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = now
	}
	notif.UpdatedAt = now
	notif.IsRead = entity.Unread
	return r.db.WithContext(ctx).Create(notif).Error
}

func (r *notificationRepositoryImpl) GetById(ctx context.Context, id int64) (*entity.Notification, error) {
	var notif entity.Notification
	// First 查不到会返回 ErrRecordNotFound
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&notif).Error
	if err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id int64) error {
	// 已读的记录不再更新，保持 is_read 单向递增
	return r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("id = ? AND is_read = ?", id, entity.Unread).
		Updates(map[string]interface{}{
			"is_read":    entity.Read,
			"updated_at": time.Now(),
		}).Error
}

func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context, recipientId string, sender string) error {
	return r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("recipient_id = ? AND sender = ? AND is_read = ?", recipientId, sender, entity.Unread).
		Updates(map[string]interface{}{
			"is_read":    entity.Read,
			"updated_at": time.Now(),
		}).Error
}

func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, recipientId string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientId, entity.Unread).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepositoryImpl) List(ctx context.Context, recipientId string, sender string, page int, pageSize int) ([]entity.Notification, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("recipient_id = ?", recipientId)
	if sender != "" {
		query = query.Where("sender = ?", sender)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifs []entity.Notification
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&notifs).Error
	if err != nil {
		return nil, 0, err
	}
	return notifs, total, nil
}

func (r *notificationRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Notification{}).Error
}
