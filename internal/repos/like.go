package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/logger"
	"github.com/skillconnect/server/internal/types"
)

type LikeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, like *types.Like) (*types.Like, error)
	DeletePair(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (bool, error)
	ListByPost(ctx context.Context, tx *gorm.DB, postID uuid.UUID) ([]*types.Like, error)
	CountByPost(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (int64, error)
}

type likeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLikeRepo(db *gorm.DB, baseLog *logger.Logger) LikeRepo {
	return &likeRepo{db: db, log: baseLog.With("repo", "LikeRepo")}
}

func (lr *likeRepo) resolve(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return lr.db
}

func (lr *likeRepo) Create(ctx context.Context, tx *gorm.DB, like *types.Like) (*types.Like, error) {
	if like.ID == uuid.Nil {
		like.ID = uuid.New()
	}
	if err := lr.resolve(tx).WithContext(ctx).Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

func (lr *likeRepo) DeletePair(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) error {
	return lr.resolve(tx).WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&types.Like{}).Error
}

func (lr *likeRepo) Exists(ctx context.Context, tx *gorm.DB, postID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := lr.resolve(tx).WithContext(ctx).
		Model(&types.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (lr *likeRepo) ListByPost(ctx context.Context, tx *gorm.DB, postID uuid.UUID) ([]*types.Like, error) {
	var likes []*types.Like
	if err := lr.resolve(tx).WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (lr *likeRepo) CountByPost(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (int64, error) {
	var count int64
	if err := lr.resolve(tx).WithContext(ctx).
		Model(&types.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
