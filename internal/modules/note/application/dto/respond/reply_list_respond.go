package respond

type ReplyListRespond struct {
	List  []ReplyItem `json:"list"`
	Total int64       `json:"total"`
	Pages int         `json:"pages"`
}
