package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/logger"
	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/repos"
	"github.com/skillconnect/server/internal/types"
)

const maxTitleLen = 100

// LearningPlanService orchestrates the plan aggregate: owner validation on
// create, the item cascade on delete, and timestamp stamping. Each operation
// runs as one transaction; a failed step leaves nothing behind.
type LearningPlanService interface {
	CreatePlan(ctx context.Context, plan *types.LearningPlan) (*types.LearningPlan, error)
	GetPlan(ctx context.Context, planID uuid.UUID) (*types.LearningPlan, error)
	ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]*types.LearningPlan, error)
	UpdatePlan(ctx context.Context, plan *types.LearningPlan) (*types.LearningPlan, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
	AddItem(ctx context.Context, item *types.LearningPlanItem, planID uuid.UUID) (*types.LearningPlanItem, error)
	CompleteItem(ctx context.Context, itemID uuid.UUID, completionDate *time.Time) (*types.LearningPlanItem, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}

type learningPlanService struct {
	db       *gorm.DB
	log      *logger.Logger
	planRepo repos.LearningPlanRepo
	itemRepo repos.LearningPlanItemRepo
	userRepo repos.UserRepo
}

func NewLearningPlanService(
	db *gorm.DB,
	baseLog *logger.Logger,
	planRepo repos.LearningPlanRepo,
	itemRepo repos.LearningPlanItemRepo,
	userRepo repos.UserRepo,
) LearningPlanService {
	return &learningPlanService{
		db:       db,
		log:      baseLog.With("service", "LearningPlanService"),
		planRepo: planRepo,
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

func (ls *learningPlanService) CreatePlan(ctx context.Context, plan *types.LearningPlan) (*types.LearningPlan, error) {
	ls.log.Info("Creating learning plan", "owner_user_id", plan.OwnerUserID)
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	var created *types.LearningPlan
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner, err := ls.userRepo.GetByID(ctx, tx, plan.OwnerUserID)
		if err != nil {
			return fmt.Errorf("resolve owner: %w", err)
		}
		if owner == nil {
			ls.log.Error("Plan owner not found", "owner_user_id", plan.OwnerUserID)
			return apperr.NotFound("user", plan.OwnerUserID.String())
		}
		plan.OwnerUserID = owner.ID
		if plan.Status == "" {
			plan.Status = types.StatusActive
		}

		created, err = ls.planRepo.Create(ctx, tx, plan)
		if err != nil {
			return fmt.Errorf("create plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ls.log.Info("Learning plan created", "plan_id", created.ID)
	return created, nil
}

func (ls *learningPlanService) GetPlan(ctx context.Context, planID uuid.UUID) (*types.LearningPlan, error) {
	ls.log.Debug("Finding learning plan", "plan_id", planID)
	return ls.planRepo.GetByID(ctx, nil, planID)
}

func (ls *learningPlanService) ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]*types.LearningPlan, error) {
	ls.log.Debug("Finding learning plans for user", "user_id", userID)
	return ls.planRepo.ListByOwner(ctx, nil, userID)
}

// UpdatePlan pre-checks existence, stamps updated_at exactly once, and
// overwrites the mutable fields. created_at and the owner are carried over
// from the stored row; ownership is validated at create only.
func (ls *learningPlanService) UpdatePlan(ctx context.Context, plan *types.LearningPlan) (*types.LearningPlan, error) {
	ls.log.Info("Updating learning plan", "plan_id", plan.ID)
	if err := validatePlanFields(plan); err != nil {
		return nil, err
	}

	var updated *types.LearningPlan
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := ls.planRepo.GetByID(ctx, tx, plan.ID)
		if err != nil {
			return fmt.Errorf("load plan: %w", err)
		}
		if existing == nil {
			ls.log.Error("Learning plan not found", "plan_id", plan.ID)
			return apperr.NotFound("learning plan", plan.ID.String())
		}

		plan.OwnerUserID = existing.OwnerUserID
		plan.CreatedAt = existing.CreatedAt
		plan.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

		updated, err = ls.planRepo.Update(ctx, tx, plan)
		if err != nil {
			return fmt.Errorf("update plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ls.log.Info("Learning plan updated", "plan_id", updated.ID)
	return updated, nil
}

// DeletePlan removes the plan and every item it owns in one transaction, so
// no reader can observe the plan gone with items remaining or vice versa.
// Deleting a plan id that does not exist is a no-op, matching the loose
// semantics of the plan-level delete (only item deletion is strict).
func (ls *learningPlanService) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	ls.log.Info("Deleting learning plan", "plan_id", planID)
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ls.itemRepo.DeleteByPlanID(ctx, tx, planID); err != nil {
			return fmt.Errorf("delete plan items: %w", err)
		}
		if err := ls.planRepo.Delete(ctx, tx, planID); err != nil {
			return fmt.Errorf("delete plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	ls.log.Info("Learning plan deleted", "plan_id", planID)
	return nil
}

// AddItem attaches an item to an existing plan. OrderIndex is taken as given;
// duplicate positions within a plan are accepted. The owning plan's
// updated_at is not touched by item mutations.
func (ls *learningPlanService) AddItem(ctx context.Context, item *types.LearningPlanItem, planID uuid.UUID) (*types.LearningPlanItem, error) {
	ls.log.Info("Adding item to learning plan", "plan_id", planID)
	if err := validateItem(item); err != nil {
		return nil, err
	}

	var created *types.LearningPlanItem
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := ls.planRepo.Exists(ctx, tx, planID)
		if err != nil {
			return fmt.Errorf("check plan: %w", err)
		}
		if !exists {
			ls.log.Error("Learning plan not found", "plan_id", planID)
			return apperr.NotFound("learning plan", planID.String())
		}

		item.PlanID = planID
		created, err = ls.itemRepo.Create(ctx, tx, item)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ls.log.Info("Item added to plan", "plan_id", planID, "item_id", created.ID)
	return created, nil
}

// CompleteItem marks an item complete and records its completion date
// (today when the caller supplies none). Only the item row is stamped.
func (ls *learningPlanService) CompleteItem(ctx context.Context, itemID uuid.UUID, completionDate *time.Time) (*types.LearningPlanItem, error) {
	ls.log.Info("Completing learning plan item", "item_id", itemID)

	var updated *types.LearningPlanItem
	err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := ls.itemRepo.GetByID(ctx, tx, itemID)
		if err != nil {
			return fmt.Errorf("load item: %w", err)
		}
		if item == nil {
			return apperr.NotFound("learning plan item", itemID.String())
		}

		when := completionDate
		if when == nil {
			today := time.Now().UTC().Truncate(24 * time.Hour)
			when = &today
		}
		item.IsComplete = true
		item.CompletionDate = when
		item.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

		updated, err = ls.itemRepo.Update(ctx, tx, item)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveItem deletes a single item. Missing items are an error, and the
// owning plan's updated_at stays as it was.
func (ls *learningPlanService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	ls.log.Info("Removing item from learning plan", "item_id", itemID)
	if err := ls.itemRepo.DeleteByID(ctx, nil, itemID); err != nil {
		return err
	}
	ls.log.Info("Item removed", "item_id", itemID)
	return nil
}

func validatePlan(plan *types.LearningPlan) error {
	if plan.OwnerUserID == uuid.Nil {
		return apperr.Invalid("owner_user_id", "required")
	}
	return validatePlanFields(plan)
}

func validatePlanFields(plan *types.LearningPlan) error {
	title := strings.TrimSpace(plan.Title)
	if title == "" {
		return apperr.Invalid("title", "must not be empty")
	}
	if len(plan.Title) > maxTitleLen {
		return apperr.Invalid("title", fmt.Sprintf("must be at most %d characters", maxTitleLen))
	}
	if plan.StartDate.IsZero() {
		return apperr.Invalid("start_date", "required")
	}
	return nil
}

func validateItem(item *types.LearningPlanItem) error {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		return apperr.Invalid("title", "must not be empty")
	}
	if len(item.Title) > maxTitleLen {
		return apperr.Invalid("title", fmt.Sprintf("must be at most %d characters", maxTitleLen))
	}
	return nil
}
