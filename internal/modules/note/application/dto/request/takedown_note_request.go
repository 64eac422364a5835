package request

type TakedownNoteRequest struct {
	Id     int64  `json:"id"`
	Reason string `json:"reason"`
}
