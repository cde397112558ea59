package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskAssignment is the many-to-many join between tasks and users.
type TaskAssignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_task_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_task_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
