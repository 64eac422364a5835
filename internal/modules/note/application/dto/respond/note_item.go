package respond

import (
	"time"

	"NoteLink/internal/modules/note/domain/entity"
)

type NoteItem struct {
	Id        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorId  string `json:"authorId"`
	Status    int8   `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func ToNoteItem(n *entity.Note) NoteItem {
	return NoteItem{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		AuthorId:  n.AuthorId,
		Status:    n.Status,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}
