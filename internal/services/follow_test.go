package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos"
	"github.com/skillconnect/server/internal/repos/testutil"
)

func newFollowService(t *testing.T) (FollowService, *testFixture) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	followRepo := repos.NewFollowRepo(db, log)
	userRepo := repos.NewUserRepo(db, log)
	svc := NewFollowService(db, log, followRepo, userRepo, nil)
	return svc, &testFixture{t: t, userRepo: userRepo}
}

func TestFollowLifecycle(t *testing.T) {
	svc, fx := newFollowService(t)
	ctx := context.Background()
	alice := fx.user(ctx, "alice@example.com")
	bob := fx.user(ctx, "bob@example.com")

	if _, err := svc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("Follow: %v", err)
	}

	following, err := svc.IsFollowing(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("IsFollowing: %v", err)
	}
	if !following {
		t.Fatal("IsFollowing: expected true after follow")
	}

	followers, err := svc.FollowerCount(ctx, bob.ID)
	if err != nil {
		t.Fatalf("FollowerCount: %v", err)
	}
	if followers != 1 {
		t.Fatalf("FollowerCount: got %d, want 1", followers)
	}
	followingN, err := svc.FollowingCount(ctx, alice.ID)
	if err != nil {
		t.Fatalf("FollowingCount: %v", err)
	}
	if followingN != 1 {
		t.Fatalf("FollowingCount: got %d, want 1", followingN)
	}

	if err := svc.Unfollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}
	following, err = svc.IsFollowing(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("IsFollowing: %v", err)
	}
	if following {
		t.Fatal("IsFollowing: expected false after unfollow")
	}
}

func TestFollowRejectsSelf(t *testing.T) {
	svc, fx := newFollowService(t)
	ctx := context.Background()
	alice := fx.user(ctx, "self@example.com")

	if _, err := svc.Follow(ctx, alice.ID, alice.ID); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("Follow: expected self-follow rejection, got %v", err)
	}
}

func TestFollowUnknownTarget(t *testing.T) {
	svc, fx := newFollowService(t)
	ctx := context.Background()
	alice := fx.user(ctx, "lonely@example.com")

	if _, err := svc.Follow(ctx, alice.ID, uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Follow: expected target-not-found, got %v", err)
	}
}

func TestFollowRejectsDuplicate(t *testing.T) {
	svc, fx := newFollowService(t)
	ctx := context.Background()
	alice := fx.user(ctx, "dup-a@example.com")
	bob := fx.user(ctx, "dup-b@example.com")

	if _, err := svc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if _, err := svc.Follow(ctx, alice.ID, bob.ID); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("Follow: expected duplicate rejection, got %v", err)
	}
}
