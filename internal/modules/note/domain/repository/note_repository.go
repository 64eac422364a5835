package repository

import (
	"context"

	"NoteLink/internal/modules/note/domain/entity"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	GetById(ctx context.Context, id int64) (*entity.Note, error)
	UpdateStatus(ctx context.Context, id int64, status int8) error

	CreateReply(ctx context.Context, reply *entity.NoteReply) error
	// ListReplies 按时间正序分页，返回当前页与总条数
	ListReplies(ctx context.Context, noteId int64, page int, pageSize int) ([]entity.NoteReply, int64, error)
}
