package request

type GetReplyListRequest struct {
	NoteId   int64 `json:"noteId"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}
