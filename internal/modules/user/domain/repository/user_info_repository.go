package repository

import (
	"context"

	"NoteLink/internal/modules/user/domain/entity"
)

type UserInfoRepository interface {
	CreateUserInfo(ctx context.Context, user *entity.UserInfo) error
	GetUserInfoByUsername(ctx context.Context, username string) (*entity.UserInfo, error)
	GetUserInfoByUUID(ctx context.Context, uuid string) (*entity.UserInfo, error)
	GetUserBriefByUUID(ctx context.Context, uuid string) (*entity.UserBrief, error)
	// ExistsByUUID 接收者存在性检查，通知创建前调用
	ExistsByUUID(ctx context.Context, uuid string) (bool, error)
}
