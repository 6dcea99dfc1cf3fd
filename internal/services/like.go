package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/skillconnect/server/internal/clients/redis"
	"github.com/skillconnect/server/internal/logger"
	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos"
	"github.com/skillconnect/server/internal/types"
)

type LikeService interface {
	LikePost(ctx context.Context, postID, userID uuid.UUID) (*types.Like, error)
	UnlikePost(ctx context.Context, postID, userID uuid.UUID) error
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*types.Like, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

type likeService struct {
	db       *gorm.DB
	log      *logger.Logger
	likeRepo repos.LikeRepo
	postRepo repos.PostRepo
	counters redisclient.CounterCache
}

// NewLikeService accepts a nil counter cache; counts then always go to
// Postgres.
func NewLikeService(
	db *gorm.DB,
	baseLog *logger.Logger,
	likeRepo repos.LikeRepo,
	postRepo repos.PostRepo,
	counters redisclient.CounterCache,
) LikeService {
	return &likeService{
		db:       db,
		log:      baseLog.With("service", "LikeService"),
		likeRepo: likeRepo,
		postRepo: postRepo,
		counters: counters,
	}
}

func (ls *likeService) LikePost(ctx context.Context, postID, userID uuid.UUID) (*types.Like, error) {
	var created *types.Like
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := ls.postRepo.Exists(ctx, tx, postID)
		if err != nil {
			return fmt.Errorf("check post: %w", err)
		}
		if !exists {
			return apperr.NotFound("post", postID.String())
		}

		liked, err := ls.likeRepo.Exists(ctx, tx, postID, userID)
		if err != nil {
			return fmt.Errorf("check like: %w", err)
		}
		if liked {
			return apperr.Invalid("post_id", "already liked")
		}

		created, err = ls.likeRepo.Create(ctx, tx, &types.Like{
			PostID: postID,
			UserID: userID,
		})
		if err != nil {
			return fmt.Errorf("create like: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if ls.counters != nil {
		ls.counters.Invalidate(ctx, redisclient.LikeCountKey(postID.String()))
	}
	ls.log.Info("Post liked", "post_id", postID, "user_id", userID)
	return created, nil
}

func (ls *likeService) UnlikePost(ctx context.Context, postID, userID uuid.UUID) error {
	if err := ls.likeRepo.DeletePair(ctx, nil, postID, userID); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	if ls.counters != nil {
		ls.counters.Invalidate(ctx, redisclient.LikeCountKey(postID.String()))
	}
	ls.log.Info("Post unliked", "post_id", postID, "user_id", userID)
	return nil
}

func (ls *likeService) ListByPost(ctx context.Context, postID uuid.UUID) ([]*types.Like, error) {
	return ls.likeRepo.ListByPost(ctx, nil, postID)
}

func (ls *likeService) CountByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	key := redisclient.LikeCountKey(postID.String())
	if ls.counters != nil {
		if n, ok := ls.counters.Get(ctx, key); ok {
			return n, nil
		}
	}
	n, err := ls.likeRepo.CountByPost(ctx, nil, postID)
	if err != nil {
		return 0, err
	}
	if ls.counters != nil {
		ls.counters.Set(ctx, key, n)
	}
	return n, nil
}
