package respond

type UnreadCountRespond struct {
	Count int64 `json:"count"`
}
