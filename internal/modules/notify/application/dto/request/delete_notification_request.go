package request

type DeleteNotificationRequest struct {
	Id int64 `json:"id"`
}
