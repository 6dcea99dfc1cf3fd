package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos/testutil"
	"github.com/skillconnect/server/internal/types"
)

func TestLearningPlanItemRepoCreateAndGet(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewLearningPlanItemRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "item-create@example.com")
	plan := testutil.SeedPlan(t, ctx, tx, owner.ID, "Plan")

	item, err := repo.Create(ctx, tx, &types.LearningPlanItem{
		PlanID:     plan.ID,
		Title:      "Read docs",
		OrderIndex: 0,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ID == uuid.Nil {
		t.Fatal("Create: expected assigned id")
	}
	if item.IsComplete {
		t.Fatal("Create: expected is_complete to default false")
	}

	got, err := repo.GetByID(ctx, tx, item.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.PlanID != plan.ID {
		t.Fatalf("GetByID: expected item bound to plan %s, got %+v", plan.ID, got)
	}
}

func TestLearningPlanItemRepoDeleteByIDStrict(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewLearningPlanItemRepo(db, testutil.Logger(t))

	err := repo.DeleteByID(ctx, tx, uuid.New())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("DeleteByID: expected not-found for missing item, got %v", err)
	}

	owner := testutil.SeedUser(t, ctx, tx, "item-delete@example.com")
	plan := testutil.SeedPlan(t, ctx, tx, owner.ID, "Plan")
	item := testutil.SeedItem(t, ctx, tx, plan.ID, "step", 0)

	if err := repo.DeleteByID(ctx, tx, item.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	got, err := repo.GetByID(ctx, tx, item.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID after delete: expected nil, got %+v", got)
	}
}

func TestLearningPlanItemRepoDeleteByPlanID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewLearningPlanItemRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "item-cascade@example.com")
	plan := testutil.SeedPlan(t, ctx, tx, owner.ID, "Plan")
	testutil.SeedItem(t, ctx, tx, plan.ID, "a", 0)
	testutil.SeedItem(t, ctx, tx, plan.ID, "b", 1)
	testutil.SeedItem(t, ctx, tx, plan.ID, "c", 2)

	if err := repo.DeleteByPlanID(ctx, tx, plan.ID); err != nil {
		t.Fatalf("DeleteByPlanID: %v", err)
	}
	items, err := repo.ListByPlanID(ctx, tx, plan.ID)
	if err != nil {
		t.Fatalf("ListByPlanID: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("DeleteByPlanID: expected 0 items left, got %d", len(items))
	}
}

func TestLearningPlanItemRepoListOrdering(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewLearningPlanItemRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "item-order@example.com")
	plan := testutil.SeedPlan(t, ctx, tx, owner.ID, "Plan")
	testutil.SeedItem(t, ctx, tx, plan.ID, "third", 2)
	testutil.SeedItem(t, ctx, tx, plan.ID, "first", 0)
	testutil.SeedItem(t, ctx, tx, plan.ID, "second", 1)

	items, err := repo.ListByPlanID(ctx, tx, plan.ID)
	if err != nil {
		t.Fatalf("ListByPlanID: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("ListByPlanID: expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Title != want {
			t.Fatalf("ListByPlanID: position %d = %q, want %q", i, items[i].Title, want)
		}
	}
}
