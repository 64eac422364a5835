package persistence

import (
	"context"
	"time"

	"NoteLink/internal/modules/note/domain/entity"
	"NoteLink/internal/modules/note/domain/repository"

	"gorm.io/gorm"
)

type noteRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepositoryImpl{db: db}
}

func (r *noteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepositoryImpl) GetById(ctx context.Context, id int64) (*entity.Note, error) {
	var note entity.Note
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status int8) error {
	return r.db.WithContext(ctx).Model(&entity.Note{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *noteRepositoryImpl) CreateReply(ctx context.Context, reply *entity.NoteReply) error {
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *noteRepositoryImpl) ListReplies(ctx context.Context, noteId int64, page int, pageSize int) ([]entity.NoteReply, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx).Model(&entity.NoteReply{}).
		Where("note_id = ?", noteId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var replies []entity.NoteReply
	err := query.
		Order("created_at ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&replies).Error
	if err != nil {
		return nil, 0, err
	}
	return replies, total, nil
}
