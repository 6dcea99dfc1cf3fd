package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos"
	"github.com/skillconnect/server/internal/repos/testutil"
	"github.com/skillconnect/server/internal/types"
)

func newLikeService(t *testing.T) (LikeService, repos.PostRepo, *testFixture) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	likeRepo := repos.NewLikeRepo(db, log)
	postRepo := repos.NewPostRepo(db, log)
	userRepo := repos.NewUserRepo(db, log)
	svc := NewLikeService(db, log, likeRepo, postRepo, nil)
	return svc, postRepo, &testFixture{t: t, userRepo: userRepo}
}

func seedPost(t *testing.T, postRepo repos.PostRepo, userID uuid.UUID) *types.Post {
	t.Helper()
	p, err := postRepo.Create(context.Background(), nil, &types.Post{
		UserID:  userID,
		Content: "hello",
	})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return p
}

func TestLikeLifecycle(t *testing.T) {
	svc, postRepo, fx := newLikeService(t)
	ctx := context.Background()
	author := fx.user(ctx, "author@example.com")
	fan := fx.user(ctx, "fan@example.com")
	post := seedPost(t, postRepo, author.ID)

	if _, err := svc.LikePost(ctx, post.ID, fan.ID); err != nil {
		t.Fatalf("LikePost: %v", err)
	}

	n, err := svc.CountByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("CountByPost: %v", err)
	}
	if n != 1 {
		t.Fatalf("CountByPost: got %d, want 1", n)
	}

	likes, err := svc.ListByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListByPost: %v", err)
	}
	if len(likes) != 1 || likes[0].UserID != fan.ID {
		t.Fatalf("ListByPost: unexpected likes %+v", likes)
	}

	if err := svc.UnlikePost(ctx, post.ID, fan.ID); err != nil {
		t.Fatalf("UnlikePost: %v", err)
	}
	n, err = svc.CountByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("CountByPost: %v", err)
	}
	if n != 0 {
		t.Fatalf("CountByPost: got %d after unlike, want 0", n)
	}
}

func TestLikeUnknownPost(t *testing.T) {
	svc, _, fx := newLikeService(t)
	ctx := context.Background()
	fan := fx.user(ctx, "eager@example.com")

	if _, err := svc.LikePost(ctx, uuid.New(), fan.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("LikePost: expected post-not-found, got %v", err)
	}
}

func TestLikeRejectsDuplicate(t *testing.T) {
	svc, postRepo, fx := newLikeService(t)
	ctx := context.Background()
	author := fx.user(ctx, "dup-author@example.com")
	fan := fx.user(ctx, "dup-fan@example.com")
	post := seedPost(t, postRepo, author.ID)

	if _, err := svc.LikePost(ctx, post.ID, fan.ID); err != nil {
		t.Fatalf("LikePost: %v", err)
	}
	if _, err := svc.LikePost(ctx, post.ID, fan.ID); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("LikePost: expected duplicate rejection, got %v", err)
	}
}
