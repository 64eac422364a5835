package respond

type NotificationListRespond struct {
	List  []NotificationItem `json:"list"`
	Total int64              `json:"total"`
	Pages int                `json:"pages"`
}
