package service

import (
	"context"
	"errors"
	"time"

	"NoteLink/internal/modules/user/application/dto/request"
	"NoteLink/internal/modules/user/application/dto/respond"
	"NoteLink/internal/modules/user/domain/entity"
	"NoteLink/internal/modules/user/domain/repository"
	"NoteLink/pkg/util"
	"NoteLink/pkg/util/myjwt"
	"NoteLink/pkg/xerr"
	"NoteLink/pkg/zlog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultAvatar = "https://cube.elemecdn.com/0/88/03b0d39583f48206768a7534e55bcpng.png"

// UserInfoService 接口定义 (Application Service)
type UserInfoService interface {
	Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error)
	Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error)
}

type userInfoServiceImpl struct {
	repo repository.UserInfoRepository
}

// NewUserInfoService 构造函数
func NewUserInfoService(repo repository.UserInfoRepository) UserInfoService {
	return &userInfoServiceImpl{repo: repo}
}

func (u *userInfoServiceImpl) Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if req.Username == "" || req.Password == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	// 1. 检查用户名是否已被占用
	_, err := u.repo.GetUserInfoByUsername(ctx, req.Username)
	if err == nil {
		return nil, xerr.New(xerr.BadRequest, "用户已存在")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	newUser := entity.UserInfo{
		Uuid:      util.GenerateUUID(),
		Username:  req.Username,
		Nickname:  req.Nickname,
		Password:  string(hashed),
		Avatar:    defaultAvatar,
		Role:      entity.RoleUser,
		Status:    entity.StatusNormal,
		CreatedAt: time.Now(),
	}
	if err := u.repo.CreateUserInfo(ctx, &newUser); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	return &respond.RegisterRespond{
		Uuid:     newUser.Uuid,
		Username: newUser.Username,
		Nickname: newUser.Nickname,
		Avatar:   newUser.Avatar,
	}, nil
}

func (u *userInfoServiceImpl) Login(ctx context.Context, req request.LoginRequest) (*respond.LoginRespond, error) {
	if req.Username == "" || req.Password == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	user, err := u.repo.GetUserInfoByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.New(xerr.Unauthorized, "用户名或密码错误")
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	if user.Status != entity.StatusNormal {
		return nil, xerr.New(xerr.Forbidden, "用户状态异常")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, xerr.New(xerr.Unauthorized, "用户名或密码错误")
	}

	token, err := myjwt.GenerateToken(user.Uuid, user.Username, user.Role)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	return &respond.LoginRespond{
		Uuid:     user.Uuid,
		Username: user.Username,
		Nickname: user.Nickname,
		Avatar:   user.Avatar,
		Role:     user.Role,
		Token:    token,
	}, nil
}
