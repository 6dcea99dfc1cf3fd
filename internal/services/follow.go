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

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID uuid.UUID) (*types.Follow, error)
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	FollowerCount(ctx context.Context, userID uuid.UUID) (int64, error)
	FollowingCount(ctx context.Context, userID uuid.UUID) (int64, error)
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

type followService struct {
	db         *gorm.DB
	log        *logger.Logger
	followRepo repos.FollowRepo
	userRepo   repos.UserRepo
	counters   redisclient.CounterCache
}

// NewFollowService accepts a nil counter cache; counts then always go to
// Postgres.
func NewFollowService(
	db *gorm.DB,
	baseLog *logger.Logger,
	followRepo repos.FollowRepo,
	userRepo repos.UserRepo,
	counters redisclient.CounterCache,
) FollowService {
	return &followService{
		db:         db,
		log:        baseLog.With("service", "FollowService"),
		followRepo: followRepo,
		userRepo:   userRepo,
		counters:   counters,
	}
}

func (fs *followService) Follow(ctx context.Context, followerID, followingID uuid.UUID) (*types.Follow, error) {
	if followerID == followingID {
		return nil, apperr.Invalid("following_id", "cannot follow yourself")
	}

	var created *types.Follow
	err := fs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := fs.userRepo.GetByID(ctx, tx, followingID)
		if err != nil {
			return fmt.Errorf("resolve followed user: %w", err)
		}
		if target == nil {
			return apperr.NotFound("user", followingID.String())
		}

		exists, err := fs.followRepo.Exists(ctx, tx, followerID, followingID)
		if err != nil {
			return fmt.Errorf("check follow: %w", err)
		}
		if exists {
			return apperr.Invalid("following_id", "already following")
		}

		created, err = fs.followRepo.Create(ctx, tx, &types.Follow{
			FollowerID:  followerID,
			FollowingID: followingID,
		})
		if err != nil {
			return fmt.Errorf("create follow: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fs.invalidate(ctx, followerID, followingID)
	fs.log.Info("Follow created", "follower_id", followerID, "following_id", followingID)
	return created, nil
}

func (fs *followService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if err := fs.followRepo.DeletePair(ctx, nil, followerID, followingID); err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	fs.invalidate(ctx, followerID, followingID)
	fs.log.Info("Follow removed", "follower_id", followerID, "following_id", followingID)
	return nil
}

func (fs *followService) FollowerCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := redisclient.FollowerCountKey(userID.String())
	if fs.counters != nil {
		if n, ok := fs.counters.Get(ctx, key); ok {
			return n, nil
		}
	}
	n, err := fs.followRepo.CountFollowers(ctx, nil, userID)
	if err != nil {
		return 0, err
	}
	if fs.counters != nil {
		fs.counters.Set(ctx, key, n)
	}
	return n, nil
}

func (fs *followService) FollowingCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := redisclient.FollowingCountKey(userID.String())
	if fs.counters != nil {
		if n, ok := fs.counters.Get(ctx, key); ok {
			return n, nil
		}
	}
	n, err := fs.followRepo.CountFollowing(ctx, nil, userID)
	if err != nil {
		return 0, err
	}
	if fs.counters != nil {
		fs.counters.Set(ctx, key, n)
	}
	return n, nil
}

func (fs *followService) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	return fs.followRepo.Exists(ctx, nil, followerID, followingID)
}

func (fs *followService) invalidate(ctx context.Context, followerID, followingID uuid.UUID) {
	if fs.counters == nil {
		return
	}
	fs.counters.Invalidate(ctx,
		redisclient.FollowerCountKey(followingID.String()),
		redisclient.FollowingCountKey(followerID.String()),
	)
}
