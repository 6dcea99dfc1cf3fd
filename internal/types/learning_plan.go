package types

import (
	"time"

	"github.com/google/uuid"
)

// Plan status values. Status is stored as free-form text and defaults to
// StatusActive; transitions are caller-driven and not enforced.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
)

// LearningPlan is a user-owned container of ordered learning steps. The plan
// is the sole owner of its items: deleting the plan deletes every item.
//
// UpdatedAt carries autoUpdateTime:false so the service layer stamps it
// exactly once per mutating call, instead of GORM re-stamping on every write.
type LearningPlan struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerUserID uuid.UUID          `gorm:"type:uuid;not null;index;column:owner_user_id" json:"owner_user_id"`
	Owner       *User              `gorm:"constraint:OnDelete:CASCADE;foreignKey:OwnerUserID;references:ID" json:"owner,omitempty"`
	Title       string             `gorm:"size:100;not null;column:title" json:"title"`
	Description string             `gorm:"type:text;column:description" json:"description"`
	StartDate   time.Time          `gorm:"type:date;not null;column:start_date" json:"start_date"`
	EndDate     *time.Time         `gorm:"type:date;column:end_date" json:"end_date,omitempty"`
	Status      string             `gorm:"size:20;not null;default:'active';column:status" json:"status"`
	Items       []LearningPlanItem `gorm:"foreignKey:PlanID;references:ID" json:"items"`
	CreatedAt   time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (LearningPlan) TableName() string { return "learning_plan" }
