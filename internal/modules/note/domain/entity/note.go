package entity

import "time"

// 笔记状态
const (
	StatusNormal   = 0
	StatusTakedown = 1 // 管理员下架
)

type Note struct {
	Id        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title     string    `gorm:"column:title;type:varchar(100);not null"`
	Content   string    `gorm:"column:content;type:mediumtext"`
	AuthorId  string    `gorm:"column:author_id;type:char(36);index;not null"`
	Status    int8      `gorm:"column:status;type:tinyint;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:datetime;not null"`
}

func (Note) TableName() string {
	return "note"
}

type NoteReply struct {
	Id        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	NoteId    int64     `gorm:"column:note_id;index;not null"`
	AuthorId  string    `gorm:"column:author_id;type:char(36);index;not null"`
	Content   string    `gorm:"column:content;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime;not null"`
}

func (NoteReply) TableName() string {
	return "note_reply"
}
