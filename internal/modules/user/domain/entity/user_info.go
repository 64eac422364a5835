package entity

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// 用户状态
	StatusNormal   = 0
	StatusDisabled = 1
)

type UserInfo struct {
	Id        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Uuid      string    `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	Username  string    `gorm:"column:username;type:varchar(32);uniqueIndex;not null"`
	Nickname  string    `gorm:"column:nickname;type:varchar(32)"`
	Password  string    `gorm:"column:password;type:varchar(100);not null"`
	Avatar    string    `gorm:"column:avatar;type:varchar(255)"`
	Role      string    `gorm:"column:role;type:varchar(10);not null;default:user"`
	Status    int8      `gorm:"column:status;type:tinyint;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime;not null"`
}

func (UserInfo) TableName() string {
	return "user_info"
}

// UserBrief 列表/引用场景下的用户摘要，不带敏感字段
type UserBrief struct {
	Id       int64  `gorm:"column:id"`
	Uuid     string `gorm:"column:uuid"`
	Username string `gorm:"column:username"`
	Nickname string `gorm:"column:nickname"`
	Avatar   string `gorm:"column:avatar"`
	Status   int8   `gorm:"column:status"`
}
