package handler

import (
	"NoteLink/internal/modules/note/application/dto/request"
	"NoteLink/internal/modules/note/application/service"
	"NoteLink/pkg/back"
	"NoteLink/pkg/xerr"
	"NoteLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	svc service.NoteService
}

func NewNoteHandler(svc service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req request.CreateNoteRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	data, err := h.svc.CreateNote(c.Request.Context(), c.GetString("uuid"), req)
	back.Result(c, data, err)
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	var req request.GetNoteRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	data, err := h.svc.GetNote(c.Request.Context(), req.Id)
	back.Result(c, data, err)
}

func (h *NoteHandler) ReplyNote(c *gin.Context) {
	var req request.ReplyNoteRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	data, err := h.svc.ReplyNote(c.Request.Context(), c.GetString("uuid"), req)
	back.Result(c, data, err)
}

func (h *NoteHandler) GetReplyList(c *gin.Context) {
	var req request.GetReplyListRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	data, err := h.svc.GetReplyList(c.Request.Context(), req)
	back.Result(c, data, err)
}

func (h *NoteHandler) TakedownNote(c *gin.Context) {
	var req request.TakedownNoteRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}

	err := h.svc.TakedownNote(c.Request.Context(), c.GetString("role"), req)
	back.Result(c, nil, err)
}
