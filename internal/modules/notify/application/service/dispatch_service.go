package service

import (
	"fmt"

	"NoteLink/internal/modules/notify/application/dto/respond"
	"NoteLink/internal/modules/notify/domain/entity"
	"NoteLink/pkg/zlog"
)

// Presence 派发所依赖的在线连接能力，由 pkg/ws 的 Hub 实现
type Presence interface {
	IsPresent(userID string) bool
	SendJSON(userID string, v interface{}) (bool, error)
}

// DispatchService 负责把"已落库"的通知实时推给接收者
// 入参必须是持久化之后的记录：先落库、后推送，推送失败绝不影响落库结果
type DispatchService interface {
	Dispatch(notif *entity.Notification)
}

type dispatchServiceImpl struct {
	presence Presence
}

func NewDispatchService(presence Presence) DispatchService {
	return &dispatchServiceImpl{presence: presence}
}

func (d *dispatchServiceImpl) Dispatch(notif *entity.Notification) {
	if notif == nil {
		return
	}

	// 接收者不在线是常态而非错误，客户端的未读数轮询会兜底
	if !d.presence.IsPresent(notif.RecipientId) {
		zlog.Debug(fmt.Sprintf("dispatch skip: recipient=%s offline, notification=%d", notif.RecipientId, notif.Id))
		return
	}

	event := respond.NotificationEvent{
		Type: respond.EventTypeNotification,
		Data: respond.ToNotificationItem(notif),
	}
	delivered, err := d.presence.SendJSON(notif.RecipientId, event)
	if err != nil {
		zlog.Warn(fmt.Sprintf("dispatch push failed: recipient=%s notification=%d err=%v", notif.RecipientId, notif.Id, err))
		return
	}
	if !delivered {
		// 在线检查和推送之间接收者恰好断开，按离线处理
		zlog.Debug(fmt.Sprintf("dispatch lost race: recipient=%s notification=%d", notif.RecipientId, notif.Id))
	}
}
