package request

type ReplyNoteRequest struct {
	NoteId  int64  `json:"noteId"`
	Content string `json:"content"`
}
