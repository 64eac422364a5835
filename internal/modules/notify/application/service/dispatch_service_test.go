package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NoteLink/internal/modules/notify/application/dto/respond"
	"NoteLink/internal/modules/notify/domain/entity"
)

func TestDispatch_SkipsOfflineRecipient(t *testing.T) {
	presence := &fakePresence{online: map[string]bool{}}
	d := NewDispatchService(presence)

	d.Dispatch(&entity.Notification{Id: 1, RecipientId: "u-1"})
	assert.Empty(t, presence.sent)
}

func TestDispatch_PushesFullRecord(t *testing.T) {
	presence := &fakePresence{online: map[string]bool{"u-1": true}}
	d := NewDispatchService(presence)

	d.Dispatch(&entity.Notification{
		Id:          42,
		Title:       "系统通知",
		Content:     "正文",
		RecipientId: "u-1",
		Sender:      entity.SenderSystem,
	})

	require.Len(t, presence.sent, 1)
	event := presence.sent[0].(respond.NotificationEvent)
	assert.Equal(t, respond.EventTypeNotification, event.Type)
	assert.Equal(t, int64(42), event.Data.Id)
	assert.Equal(t, "系统通知", event.Data.Title)
	assert.Equal(t, "正文", event.Data.Content)
	assert.Equal(t, entity.SenderSystem, event.Data.Sender)
}

func TestDispatch_ToleratesPushError(t *testing.T) {
	presence := &fakePresence{
		online:  map[string]bool{"u-1": true},
		sendErr: errors.New("write: broken pipe"),
	}
	d := NewDispatchService(presence)

	// 推送失败只记日志，不允许 panic 或向上传播
	d.Dispatch(&entity.Notification{Id: 1, RecipientId: "u-1"})
	assert.Empty(t, presence.sent)
}

func TestDispatch_NilNotification(t *testing.T) {
	presence := &fakePresence{online: map[string]bool{}}
	d := NewDispatchService(presence)
	d.Dispatch(nil)
	assert.Empty(t, presence.sent)
}
