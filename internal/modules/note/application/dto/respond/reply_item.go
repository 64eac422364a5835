package respond

import (
	"time"

	"NoteLink/internal/modules/note/domain/entity"
)

type ReplyItem struct {
	Id        int64  `json:"id"`
	NoteId    int64  `json:"noteId"`
	AuthorId  string `json:"authorId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func ToReplyItem(r *entity.NoteReply) ReplyItem {
	return ReplyItem{
		Id:        r.Id,
		NoteId:    r.NoteId,
		AuthorId:  r.AuthorId,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
