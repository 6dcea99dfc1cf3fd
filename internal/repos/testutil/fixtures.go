package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Username: fmt.Sprintf("user-%s", uuid.New().String()[:8]),
		Email:    email,
		Password: "pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedPlan(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, title string) *types.LearningPlan {
	tb.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := &types.LearningPlan{
		ID:          uuid.New(),
		OwnerUserID: ownerID,
		Title:       title,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      types.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed plan: %v", err)
	}
	return p
}

func SeedItem(tb testing.TB, ctx context.Context, tx *gorm.DB, planID uuid.UUID, title string, orderIndex int) *types.LearningPlanItem {
	tb.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	it := &types.LearningPlanItem{
		ID:         uuid.New(),
		PlanID:     planID,
		Title:      title,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed item: %v", err)
	}
	return it
}

func SeedPost(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, content string) *types.Post {
	tb.Helper()
	p := &types.Post{
		ID:      uuid.New(),
		UserID:  userID,
		Content: content,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed post: %v", err)
	}
	return p
}
