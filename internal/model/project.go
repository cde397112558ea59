package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can have on a project.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Role is the viewer's relation to the project, computed when listing.
	Role string `gorm:"-" json:"role"`
}
