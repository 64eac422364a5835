package handler

import (
	"NoteLink/internal/modules/notify/application/dto/request"
	"NoteLink/internal/modules/notify/application/service"
	userEntity "NoteLink/internal/modules/user/domain/entity"
	"NoteLink/pkg/back"
	"NoteLink/pkg/xerr"
	"NoteLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) GetNotificationList(c *gin.Context) {
	var req request.GetNotificationListRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	// 只能查自己的通知
	data, err := h.svc.GetNotificationList(c.Request.Context(), c.GetString("uuid"), req)
	back.Result(c, data, err)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	data, err := h.svc.GetUnreadCount(c.Request.Context(), c.GetString("uuid"))
	back.Result(c, data, err)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req request.MarkReadRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	err := h.svc.MarkRead(c.Request.Context(), c.GetString("uuid"), req.Id)
	back.Result(c, nil, err)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	var req request.MarkAllReadRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	err := h.svc.MarkAllRead(c.Request.Context(), c.GetString("uuid"), req.Sender)
	back.Result(c, nil, err)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	var req request.DeleteNotificationRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	err := h.svc.Delete(c.Request.Context(), c.GetString("uuid"), c.GetString("role"), req.Id)
	back.Result(c, nil, err)
}

// SendNotification 特权入口：管理员代发任意类别的通知
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	if c.GetString("role") != userEntity.RoleAdmin {
		back.Error(c, xerr.Forbidden, xerr.ErrForbidden.Message)
		return
	}

	var req request.SendNotificationRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	data, err := h.svc.Notify(c.Request.Context(), req)
	back.Result(c, data, err)
}
