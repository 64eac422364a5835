package request

type GetNoteRequest struct {
	Id int64 `json:"id"`
}
