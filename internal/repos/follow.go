package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/logger"
	"github.com/skillconnect/server/internal/types"
)

type FollowRepo interface {
	Create(ctx context.Context, tx *gorm.DB, follow *types.Follow) (*types.Follow, error)
	DeletePair(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type followRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFollowRepo(db *gorm.DB, baseLog *logger.Logger) FollowRepo {
	return &followRepo{db: db, log: baseLog.With("repo", "FollowRepo")}
}

func (fr *followRepo) resolve(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return fr.db
}

func (fr *followRepo) Create(ctx context.Context, tx *gorm.DB, follow *types.Follow) (*types.Follow, error) {
	if follow.ID == uuid.Nil {
		follow.ID = uuid.New()
	}
	if err := fr.resolve(tx).WithContext(ctx).Create(follow).Error; err != nil {
		return nil, err
	}
	return follow, nil
}

func (fr *followRepo) DeletePair(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) error {
	return fr.resolve(tx).WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&types.Follow{}).Error
}

func (fr *followRepo) Exists(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	if err := fr.resolve(tx).WithContext(ctx).
		Model(&types.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (fr *followRepo) CountFollowers(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	if err := fr.resolve(tx).WithContext(ctx).
		Model(&types.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (fr *followRepo) CountFollowing(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	if err := fr.resolve(tx).WithContext(ctx).
		Model(&types.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
