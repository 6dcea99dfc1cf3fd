package types

import (
	"time"

	"github.com/google/uuid"
)

// LearningPlanItem is one step within a plan, independently completable.
// PlanID is set when the item is attached through the plan service and must
// reference an existing plan for the item's whole lifetime.
//
// OrderIndex uniqueness within a plan is not validated here; callers own the
// ordering. CompletionDate is likewise not tied to IsComplete.
type LearningPlanItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID         uuid.UUID  `gorm:"type:uuid;not null;index;column:plan_id" json:"plan_id"`
	Title          string     `gorm:"size:100;not null;column:title" json:"title"`
	Description    string     `gorm:"type:text;column:description" json:"description"`
	OrderIndex     int        `gorm:"not null;column:order_index" json:"order_index"`
	IsComplete     bool       `gorm:"not null;default:false;column:is_complete" json:"is_complete"`
	CompletionDate *time.Time `gorm:"type:date;column:completion_date" json:"completion_date,omitempty"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (LearningPlanItem) TableName() string { return "learning_plan_item" }
