package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos/testutil"
	"github.com/skillconnect/server/internal/types"
)

func TestLearningPlanRepoCreateAssignsIDAndTimestamps(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewLearningPlanRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "plan-create@example.com")
	plan := &types.LearningPlan{
		OwnerUserID: owner.ID,
		Title:       "Learn Go",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      types.StatusActive,
	}

	created, err := repo.Create(ctx, tx, plan)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Create: expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("Create: expected created_at stamp")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("Create: created_at %v != updated_at %v", created.CreatedAt, created.UpdatedAt)
	}
}

func TestLearningPlanRepoGetByIDAbsent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewLearningPlanRepo(db, testutil.Logger(t))

	plan, err := repo.GetByID(context.Background(), tx, uuid.New())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if plan != nil {
		t.Fatalf("GetByID: expected nil for missing plan, got %+v", plan)
	}
}

func TestLearningPlanRepoGetByIDPreloadsItems(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewLearningPlanRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "plan-items@example.com")
	plan := testutil.SeedPlan(t, ctx, tx, owner.ID, "With items")
	testutil.SeedItem(t, ctx, tx, plan.ID, "second", 1)
	testutil.SeedItem(t, ctx, tx, plan.ID, "first", 0)

	got, err := repo.GetByID(ctx, tx, plan.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID: expected plan")
	}
	if len(got.Items) != 2 {
		t.Fatalf("GetByID: expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].Title != "first" || got.Items[1].Title != "second" {
		t.Fatalf("GetByID: items out of order: %q, %q", got.Items[0].Title, got.Items[1].Title)
	}
}

func TestLearningPlanRepoUpdateMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewLearningPlanRepo(db, testutil.Logger(t))

	_, err := repo.Update(context.Background(), tx, &types.LearningPlan{
		ID:        uuid.New(),
		Title:     "ghost",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Now().UTC(),
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Update: expected not-found, got %v", err)
	}
}

func TestLearningPlanRepoUpdatePreservesCreatedAt(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewLearningPlanRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "plan-update@example.com")
	plan := testutil.SeedPlan(t, ctx, tx, owner.ID, "Before")

	plan.Title = "After"
	plan.UpdatedAt = time.Now().UTC().Add(time.Hour)
	if _, err := repo.Update(ctx, tx, plan); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, plan.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if got.Title != "After" {
		t.Fatalf("Update: title not written, got %q", got.Title)
	}
	if !got.CreatedAt.Equal(plan.CreatedAt) {
		t.Fatalf("Update: created_at changed from %v to %v", plan.CreatedAt, got.CreatedAt)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("Update: updated_at %v not after created_at %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestLearningPlanRepoDeleteMissingIsNoOp(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewLearningPlanRepo(db, testutil.Logger(t))

	if err := repo.Delete(context.Background(), tx, uuid.New()); err != nil {
		t.Fatalf("Delete: expected no-op for missing plan, got %v", err)
	}
}

func TestLearningPlanRepoListByOwner(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewLearningPlanRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "plan-list@example.com")
	other := testutil.SeedUser(t, ctx, tx, "plan-list-other@example.com")
	testutil.SeedPlan(t, ctx, tx, owner.ID, "one")
	testutil.SeedPlan(t, ctx, tx, owner.ID, "two")
	testutil.SeedPlan(t, ctx, tx, other.ID, "not mine")

	plans, err := repo.ListByOwner(ctx, tx, owner.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("ListByOwner: expected 2 plans, got %d", len(plans))
	}
	for _, p := range plans {
		if p.OwnerUserID != owner.ID {
			t.Fatalf("ListByOwner: plan %s has wrong owner %s", p.ID, p.OwnerUserID)
		}
	}
}
