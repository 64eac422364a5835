package entity

import "time"

// 发送方类别是封闭枚举，任何其它取值都按校验失败处理，不做静默兜底
const (
	SenderSystem = "system"
	SenderUser   = "user"
	SenderAdmin  = "admin"
)

// IsRead 取值
const (
	Unread = 0
	Read   = 1
)

func ValidSender(sender string) bool {
	switch sender {
	case SenderSystem, SenderUser, SenderAdmin:
		return true
	}
	return false
}

// Notification 通知实体
// is_read 单向递增：一旦置为已读，常规操作不会再把它改回未读
// recipient_id 创建后不可变更
type Notification struct {
	Id          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;type:varchar(100);not null"`
	Content     string    `gorm:"column:content;type:text"`
	RecipientId string    `gorm:"column:recipient_id;type:char(36);index;not null"`
	Sender      string    `gorm:"column:sender;type:varchar(10);not null"`
	IsRead      int8      `gorm:"column:is_read;type:tinyint;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;type:datetime;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:datetime;not null"`
}

func (Notification) TableName() string {
	return "notification"
}
