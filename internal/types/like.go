package types

import (
	"time"

	"github.com/google/uuid"
)

// Like is one user liking one post. The (post, user) pair is unique.
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_pair;index" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_pair" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Like) TableName() string { return "like" }
