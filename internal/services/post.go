package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/logger"
	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos"
	"github.com/skillconnect/server/internal/types"
)

type PostService interface {
	CreatePost(ctx context.Context, post *types.Post) (*types.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*types.Post, error)
	ListPostsByUser(ctx context.Context, userID uuid.UUID) ([]*types.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
}

type postService struct {
	db       *gorm.DB
	log      *logger.Logger
	postRepo repos.PostRepo
	userRepo repos.UserRepo
}

func NewPostService(db *gorm.DB, baseLog *logger.Logger, postRepo repos.PostRepo, userRepo repos.UserRepo) PostService {
	return &postService{
		db:       db,
		log:      baseLog.With("service", "PostService"),
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (ps *postService) CreatePost(ctx context.Context, post *types.Post) (*types.Post, error) {
	if strings.TrimSpace(post.Content) == "" {
		return nil, apperr.Invalid("content", "must not be empty")
	}

	var created *types.Post
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		author, err := ps.userRepo.GetByID(ctx, tx, post.UserID)
		if err != nil {
			return fmt.Errorf("resolve author: %w", err)
		}
		if author == nil {
			return apperr.NotFound("user", post.UserID.String())
		}
		created, err = ps.postRepo.Create(ctx, tx, post)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ps.log.Info("Post created", "post_id", created.ID, "user_id", created.UserID)
	return created, nil
}

func (ps *postService) GetPost(ctx context.Context, postID uuid.UUID) (*types.Post, error) {
	return ps.postRepo.GetByID(ctx, nil, postID)
}

func (ps *postService) ListPostsByUser(ctx context.Context, userID uuid.UUID) ([]*types.Post, error) {
	return ps.postRepo.ListByUser(ctx, nil, userID)
}

func (ps *postService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	if err := ps.postRepo.Delete(ctx, nil, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	ps.log.Info("Post deleted", "post_id", postID)
	return nil
}
