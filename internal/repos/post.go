package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/logger"
	"github.com/skillconnect/server/internal/types"
)

type PostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, post *types.Post) (*types.Post, error)
	GetByID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (*types.Post, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Post, error)
	Delete(ctx context.Context, tx *gorm.DB, postID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (bool, error)
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return &postRepo{db: db, log: baseLog.With("repo", "PostRepo")}
}

func (pr *postRepo) resolve(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

func (pr *postRepo) Create(ctx context.Context, tx *gorm.DB, post *types.Post) (*types.Post, error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if err := pr.resolve(tx).WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (pr *postRepo) GetByID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (*types.Post, error) {
	var post types.Post
	err := pr.resolve(tx).WithContext(ctx).Where("id = ?", postID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (pr *postRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Post, error) {
	var posts []*types.Post
	if err := pr.resolve(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (pr *postRepo) Delete(ctx context.Context, tx *gorm.DB, postID uuid.UUID) error {
	return pr.resolve(tx).WithContext(ctx).Delete(&types.Post{}, "id = ?", postID).Error
}

func (pr *postRepo) Exists(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (bool, error) {
	var count int64
	if err := pr.resolve(tx).WithContext(ctx).
		Model(&types.Post{}).
		Where("id = ?", postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
