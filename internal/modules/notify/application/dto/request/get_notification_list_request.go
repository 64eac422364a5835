package request

type GetNotificationListRequest struct {
	Sender   string `json:"sender"` // 为空表示全部类别
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}
