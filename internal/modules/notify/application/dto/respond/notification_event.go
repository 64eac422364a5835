package respond

// NotificationEvent 实时推送事件，data 是完整的已落库通知
type NotificationEvent struct {
	Type string           `json:"type"`
	Data NotificationItem `json:"data"`
}

const EventTypeNotification = "notification"
