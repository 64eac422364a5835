package request

type MarkReadRequest struct {
	Id int64 `json:"id"`
}
