package service

import (
	"context"
	"errors"
	"fmt"

	"NoteLink/internal/modules/note/application/dto/request"
	"NoteLink/internal/modules/note/application/dto/respond"
	"NoteLink/internal/modules/note/domain/entity"
	"NoteLink/internal/modules/note/domain/repository"
	notifyRequest "NoteLink/internal/modules/notify/application/dto/request"
	notifyEntity "NoteLink/internal/modules/notify/domain/entity"
	notifyService "NoteLink/internal/modules/notify/application/service"
	userEntity "NoteLink/internal/modules/user/domain/entity"
	userRepository "NoteLink/internal/modules/user/domain/repository"
	"NoteLink/pkg/markup"
	"NoteLink/pkg/xerr"
	"NoteLink/pkg/zlog"

	"gorm.io/gorm"
)

const (
	maxTitleLen   = 100
	maxContentLen = 50000
)

type NoteService interface {
	CreateNote(ctx context.Context, authorUuid string, req request.CreateNoteRequest) (*respond.NoteItem, error)
	GetNote(ctx context.Context, id int64) (*respond.NoteItem, error)
	// ReplyNote 发表回复，并给笔记作者生成一条带引用标记的通知
	// 回复本身的成败只取决于回复落库，不受通知/推送影响
	ReplyNote(ctx context.Context, callerUuid string, req request.ReplyNoteRequest) (*respond.ReplyItem, error)
	GetReplyList(ctx context.Context, req request.GetReplyListRequest) (*respond.ReplyListRespond, error)
	// TakedownNote 管理员下架笔记，并以 admin 类别通知作者
	TakedownNote(ctx context.Context, callerRole string, req request.TakedownNoteRequest) error
}

type noteServiceImpl struct {
	repo      repository.NoteRepository
	userRepo  userRepository.UserInfoRepository
	notifySvc notifyService.NotificationService
}

func NewNoteService(
	repo repository.NoteRepository,
	userRepo userRepository.UserInfoRepository,
	notifySvc notifyService.NotificationService,
) NoteService {
	return &noteServiceImpl{
		repo:      repo,
		userRepo:  userRepo,
		notifySvc: notifySvc,
	}
}

func (s *noteServiceImpl) CreateNote(ctx context.Context, authorUuid string, req request.CreateNoteRequest) (*respond.NoteItem, error) {
	if req.Title == "" || len(req.Title) > maxTitleLen {
		return nil, xerr.New(xerr.BadRequest, "标题不能为空且不能超长")
	}
	if len(req.Content) > maxContentLen {
		return nil, xerr.New(xerr.BadRequest, "内容超长")
	}

	note := &entity.Note{
		Title:    req.Title,
		Content:  req.Content,
		AuthorId: authorUuid,
		Status:   entity.StatusNormal,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	item := respond.ToNoteItem(note)
	return &item, nil
}

func (s *noteServiceImpl) GetNote(ctx context.Context, id int64) (*respond.NoteItem, error) {
	note, err := s.loadVisible(ctx, id)
	if err != nil {
		return nil, err
	}
	item := respond.ToNoteItem(note)
	return &item, nil
}

func (s *noteServiceImpl) ReplyNote(ctx context.Context, callerUuid string, req request.ReplyNoteRequest) (*respond.ReplyItem, error) {
	if req.Content == "" {
		return nil, xerr.New(xerr.BadRequest, "回复内容不能为空")
	}

	note, err := s.loadVisible(ctx, req.NoteId)
	if err != nil {
		return nil, err
	}

	reply := &entity.NoteReply{
		NoteId:   note.Id,
		AuthorId: callerUuid,
		Content:  req.Content,
	}
	if err := s.repo.CreateReply(ctx, reply); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	// 给自己的笔记回复不产生通知
	if note.AuthorId != callerUuid {
		s.notifyReply(ctx, note, callerUuid)
	}

	item := respond.ToReplyItem(reply)
	return &item, nil
}

// notifyReply 组装带引用标记的通知正文并交给通知服务
// 通知失败只记日志，回复已经落库成功
func (s *noteServiceImpl) notifyReply(ctx context.Context, note *entity.Note, replierUuid string) {
	brief, err := s.userRepo.GetUserBriefByUUID(ctx, replierUuid)
	if err != nil {
		zlog.Warn(fmt.Sprintf("reply notification skipped: replier=%s err=%v", replierUuid, err))
		return
	}
	name := brief.Nickname
	if name == "" {
		name = brief.Username
	}

	content := fmt.Sprintf("%s 回复了你的笔记 %s",
		markup.UserRef(brief.Id, name),
		markup.NoteRef(note.Id, note.Title))

	_, err = s.notifySvc.Notify(ctx, notifyRequest.SendNotificationRequest{
		RecipientId: note.AuthorId,
		Sender:      notifyEntity.SenderUser,
		Title:       "收到新回复",
		Content:     content,
	})
	if err != nil {
		zlog.Warn(fmt.Sprintf("reply notification failed: note=%d err=%v", note.Id, err))
	}
}

func (s *noteServiceImpl) GetReplyList(ctx context.Context, req request.GetReplyListRequest) (*respond.ReplyListRespond, error) {
	if _, err := s.loadVisible(ctx, req.NoteId); err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	replies, total, err := s.repo.ListReplies(ctx, req.NoteId, page, pageSize)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	list := make([]respond.ReplyItem, 0, len(replies))
	for i := range replies {
		list = append(list, respond.ToReplyItem(&replies[i]))
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &respond.ReplyListRespond{
		List:  list,
		Total: total,
		Pages: pages,
	}, nil
}

func (s *noteServiceImpl) TakedownNote(ctx context.Context, callerRole string, req request.TakedownNoteRequest) error {
	if callerRole != userEntity.RoleAdmin {
		return xerr.New(xerr.Forbidden, xerr.ErrForbidden.Message)
	}

	note, err := s.loadVisible(ctx, req.Id)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, note.Id, entity.StatusTakedown); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}

	content := fmt.Sprintf("你的笔记 %s 已被管理员下架", markup.NoteRef(note.Id, note.Title))
	if req.Reason != "" {
		content += "，原因：" + req.Reason
	}
	_, err = s.notifySvc.Notify(ctx, notifyRequest.SendNotificationRequest{
		RecipientId: note.AuthorId,
		Sender:      notifyEntity.SenderAdmin,
		Title:       "笔记已被下架",
		Content:     content,
	})
	if err != nil {
		zlog.Warn(fmt.Sprintf("takedown notification failed: note=%d err=%v", note.Id, err))
	}
	return nil
}

func (s *noteServiceImpl) loadVisible(ctx context.Context, id int64) (*entity.Note, error) {
	note, err := s.repo.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.New(xerr.NotFound, "笔记不存在")
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	if note.Status == entity.StatusTakedown {
		return nil, xerr.New(xerr.NotFound, "笔记不存在")
	}
	return note, nil
}
