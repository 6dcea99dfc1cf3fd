package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillconnect/server/internal/logger"
	apperr "github.com/skillconnect/server/internal/pkg/errors"
	"github.com/skillconnect/server/internal/types"
)

// LearningPlanRepo persists plans. Ownership validation and the item cascade
// belong to the service layer; this store only moves rows.
type LearningPlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plan *types.LearningPlan) (*types.LearningPlan, error)
	GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.LearningPlan, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningPlan, error)
	Update(ctx context.Context, tx *gorm.DB, plan *types.LearningPlan) (*types.LearningPlan, error)
	Delete(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (bool, error)
}

type learningPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPlanRepo(db *gorm.DB, baseLog *logger.Logger) LearningPlanRepo {
	return &learningPlanRepo{db: db, log: baseLog.With("repo", "LearningPlanRepo")}
}

func (pr *learningPlanRepo) resolve(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

// Create assigns the plan id and stamps created_at = updated_at when the
// caller left them zero.
func (pr *learningPlanRepo) Create(ctx context.Context, tx *gorm.DB, plan *types.LearningPlan) (*types.LearningPlan, error) {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	if plan.CreatedAt.IsZero() {
		now := time.Now().UTC().Truncate(time.Microsecond)
		plan.CreatedAt = now
		plan.UpdatedAt = now
	}
	if err := pr.resolve(tx).WithContext(ctx).Omit("Items").Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (pr *learningPlanRepo) GetByID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.LearningPlan, error) {
	var plan types.LearningPlan
	err := pr.resolve(tx).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, created_at ASC")
		}).
		Where("id = ?", planID).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (pr *learningPlanRepo) ListByOwner(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.LearningPlan, error) {
	var plans []*types.LearningPlan
	if err := pr.resolve(tx).WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, created_at ASC")
		}).
		Where("owner_user_id = ?", userID).
		Order("created_at ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Update overwrites the mutable columns of an existing row. created_at is
// deliberately excluded and updated_at is written as given; the service
// stamps it once per call.
func (pr *learningPlanRepo) Update(ctx context.Context, tx *gorm.DB, plan *types.LearningPlan) (*types.LearningPlan, error) {
	res := pr.resolve(tx).WithContext(ctx).
		Model(&types.LearningPlan{}).
		Where("id = ?", plan.ID).
		Select("title", "description", "start_date", "end_date", "status", "updated_at").
		Updates(plan)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("learning plan", plan.ID.String())
	}
	return plan, nil
}

// Delete removes the plan row only. Missing rows are a no-op.
func (pr *learningPlanRepo) Delete(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error {
	return pr.resolve(tx).WithContext(ctx).Delete(&types.LearningPlan{}, "id = ?", planID).Error
}

func (pr *learningPlanRepo) Exists(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (bool, error) {
	var count int64
	if err := pr.resolve(tx).WithContext(ctx).
		Model(&types.LearningPlan{}).
		Where("id = ?", planID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
