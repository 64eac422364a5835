package request

type MarkAllReadRequest struct {
	Sender string `json:"sender"`
}
