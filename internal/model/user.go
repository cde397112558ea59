package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the global identity referenced by assignments and memberships.
// Its ID is the authenticated principal's ID, so rows are created lazily.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
