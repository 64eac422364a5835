package request

type SendNotificationRequest struct {
	RecipientId string `json:"recipientId"`
	Sender      string `json:"sender"`
	Title       string `json:"title"`
	Content     string `json:"content"`
}
