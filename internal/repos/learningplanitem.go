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

// LearningPlanItemRepo persists plan items. Callers set PlanID before Create;
// items are never created detached.
type LearningPlanItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *types.LearningPlanItem) (*types.LearningPlanItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.LearningPlanItem, error)
	ListByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.LearningPlanItem, error)
	Update(ctx context.Context, tx *gorm.DB, item *types.LearningPlanItem) (*types.LearningPlanItem, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error
	DeleteByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error
}

type learningPlanItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPlanItemRepo(db *gorm.DB, baseLog *logger.Logger) LearningPlanItemRepo {
	return &learningPlanItemRepo{db: db, log: baseLog.With("repo", "LearningPlanItemRepo")}
}

func (ir *learningPlanItemRepo) resolve(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ir.db
}

func (ir *learningPlanItemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.LearningPlanItem) (*types.LearningPlanItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		now := time.Now().UTC().Truncate(time.Microsecond)
		item.CreatedAt = now
		item.UpdatedAt = now
	}
	if err := ir.resolve(tx).WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (ir *learningPlanItemRepo) GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.LearningPlanItem, error) {
	var item types.LearningPlanItem
	err := ir.resolve(tx).WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (ir *learningPlanItemRepo) ListByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.LearningPlanItem, error) {
	var items []*types.LearningPlanItem
	if err := ir.resolve(tx).WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("order_index ASC, created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (ir *learningPlanItemRepo) Update(ctx context.Context, tx *gorm.DB, item *types.LearningPlanItem) (*types.LearningPlanItem, error) {
	res := ir.resolve(tx).WithContext(ctx).
		Model(&types.LearningPlanItem{}).
		Where("id = ?", item.ID).
		Select("title", "description", "order_index", "is_complete", "completion_date", "updated_at").
		Updates(item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("learning plan item", item.ID.String())
	}
	return item, nil
}

// DeleteByID has strict semantics: deleting a row that does not exist is an
// error, unlike the plan-level delete.
func (ir *learningPlanItemRepo) DeleteByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	res := ir.resolve(tx).WithContext(ctx).Delete(&types.LearningPlanItem{}, "id = ?", itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("learning plan item", itemID.String())
	}
	return nil
}

func (ir *learningPlanItemRepo) DeleteByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error {
	return ir.resolve(tx).WithContext(ctx).Delete(&types.LearningPlanItem{}, "plan_id = ?", planID).Error
}
