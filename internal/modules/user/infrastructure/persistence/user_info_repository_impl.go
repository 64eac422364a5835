package persistence

import (
	"context"

	"NoteLink/internal/modules/user/domain/entity"
	"NoteLink/internal/modules/user/domain/repository"

	"gorm.io/gorm"
)

type userInfoRepositoryImpl struct {
	db *gorm.DB
}

// NewUserInfoRepository 构造函数
func NewUserInfoRepository(db *gorm.DB) repository.UserInfoRepository {
	return &userInfoRepositoryImpl{db: db}
}

func (r *userInfoRepositoryImpl) CreateUserInfo(ctx context.Context, user *entity.UserInfo) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userInfoRepositoryImpl) GetUserInfoByUsername(ctx context.Context, username string) (*entity.UserInfo, error) {
	var user entity.UserInfo
	// First 查不到会返回 ErrRecordNotFound
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userInfoRepositoryImpl) GetUserInfoByUUID(ctx context.Context, uuid string) (*entity.UserInfo, error) {
	var user entity.UserInfo
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userInfoRepositoryImpl) GetUserBriefByUUID(ctx context.Context, uuid string) (*entity.UserBrief, error) {
	var user entity.UserBrief
	// Use Select to explicitly fetch safe fields, excluding password
	err := r.db.WithContext(ctx).Model(&entity.UserInfo{}).
		Select("id", "uuid", "username", "nickname", "avatar", "status").
		Where("uuid = ?", uuid).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userInfoRepositoryImpl) ExistsByUUID(ctx context.Context, uuid string) (bool, error) {
	if uuid == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.UserInfo{}).
		Where("uuid = ?", uuid).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
