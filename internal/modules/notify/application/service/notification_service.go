package service

import (
	"context"
	"errors"

	"NoteLink/internal/modules/notify/application/dto/request"
	"NoteLink/internal/modules/notify/application/dto/respond"
	"NoteLink/internal/modules/notify/domain/entity"
	"NoteLink/internal/modules/notify/domain/repository"
	userEntity "NoteLink/internal/modules/user/domain/entity"
	userRepository "NoteLink/internal/modules/user/domain/repository"
	"NoteLink/pkg/xerr"
	"NoteLink/pkg/zlog"

	"gorm.io/gorm"
)

const (
	maxTitleLen   = 100
	maxContentLen = 2000

	defaultPageSize = 10
	maxPageSize     = 100
)

type NotificationService interface {
	// Notify 先落库后派发，落库失败直接返回，不会有任何推送
	Notify(ctx context.Context, req request.SendNotificationRequest) (*respond.NotificationItem, error)
	GetNotificationList(ctx context.Context, recipientId string, req request.GetNotificationListRequest) (*respond.NotificationListRespond, error)
	GetUnreadCount(ctx context.Context, recipientId string) (*respond.UnreadCountRespond, error)
	// MarkRead 只有接收者本人可以改已读状态，管理员也不行
	MarkRead(ctx context.Context, callerUuid string, id int64) error
	MarkAllRead(ctx context.Context, recipientId string, sender string) error
	// Delete 接收者本人或管理员可删
	Delete(ctx context.Context, callerUuid string, callerRole string, id int64) error
}

type notificationServiceImpl struct {
	repo       repository.NotificationRepository
	userRepo   userRepository.UserInfoRepository
	dispatcher DispatchService
}

func NewNotificationService(
	repo repository.NotificationRepository,
	userRepo userRepository.UserInfoRepository,
	dispatcher DispatchService,
) NotificationService {
	return &notificationServiceImpl{
		repo:       repo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
	}
}

func (s *notificationServiceImpl) Notify(ctx context.Context, req request.SendNotificationRequest) (*respond.NotificationItem, error) {
	if !entity.ValidSender(req.Sender) {
		return nil, xerr.New(xerr.BadRequest, "sender 类别不合法")
	}
	if req.Title == "" || len(req.Title) > maxTitleLen {
		return nil, xerr.New(xerr.BadRequest, "标题不能为空且不能超长")
	}
	if len(req.Content) > maxContentLen {
		return nil, xerr.New(xerr.BadRequest, "内容超长")
	}
	if req.RecipientId == "" {
		return nil, xerr.New(xerr.BadRequest, "接收者不能为空")
	}

	exists, err := s.userRepo.ExistsByUUID(ctx, req.RecipientId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	if !exists {
		return nil, xerr.New(xerr.BadRequest, "接收者不存在")
	}

	notif := &entity.Notification{
		Title:       req.Title,
		Content:     req.Content,
		RecipientId: req.RecipientId,
		Sender:      req.Sender,
	}
	if err := s.repo.Create(ctx, notif); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	// 推送只对已落库的记录发生，结果不影响本次调用
	s.dispatcher.Dispatch(notif)

	item := respond.ToNotificationItem(notif)
	return &item, nil
}

func (s *notificationServiceImpl) GetNotificationList(ctx context.Context, recipientId string, req request.GetNotificationListRequest) (*respond.NotificationListRespond, error) {
	if req.Sender != "" && !entity.ValidSender(req.Sender) {
		return nil, xerr.New(xerr.BadRequest, "sender 类别不合法")
	}

	// 越界的分页参数收敛到合理区间，不报错
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	notifs, total, err := s.repo.List(ctx, recipientId, req.Sender, page, pageSize)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	list := make([]respond.NotificationItem, 0, len(notifs))
	for i := range notifs {
		list = append(list, respond.ToNotificationItem(&notifs[i]))
	}

	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &respond.NotificationListRespond{
		List:  list,
		Total: total,
		Pages: pages,
	}, nil
}

func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context, recipientId string) (*respond.UnreadCountRespond, error) {
	count, err := s.repo.CountUnread(ctx, recipientId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return &respond.UnreadCountRespond{Count: count}, nil
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, callerUuid string, id int64) error {
	notif, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	// 已读状态只归接收者本人管
	if notif.RecipientId != callerUuid {
		return xerr.New(xerr.Forbidden, "无权操作该通知")
	}

	// 已读再标记是幂等空操作
	if notif.IsRead == entity.Read {
		return nil
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, recipientId string, sender string) error {
	if !entity.ValidSender(sender) {
		return xerr.New(xerr.BadRequest, "sender 类别不合法")
	}
	if err := s.repo.MarkAllRead(ctx, recipientId, sender); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

func (s *notificationServiceImpl) Delete(ctx context.Context, callerUuid string, callerRole string, id int64) error {
	notif, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if notif.RecipientId != callerUuid && callerRole != userEntity.RoleAdmin {
		return xerr.New(xerr.Forbidden, "无权操作该通知")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

// load 取出通知，"不存在" 返回 404
// 归属校验留给各操作自己做，403 和 404 必须可区分
func (s *notificationServiceImpl) load(ctx context.Context, id int64) (*entity.Notification, error) {
	notif, err := s.repo.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.New(xerr.NotFound, "通知不存在")
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return notif, nil
}
