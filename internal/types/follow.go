package types

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a single edge in the follow graph. The (follower, following)
// pair is unique.
type Follow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FollowerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair;index" json:"follower_id"`
	FollowingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair;index" json:"following_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Follow) TableName() string { return "follow" }
