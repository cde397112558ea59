package board

import (
	"context"

	"taskboard/internal/model"

	"github.com/google/uuid"
)

type ProjectStore interface {
	Create(ctx context.Context, name string, ownerID uuid.UUID) (*model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
}

type ColumnStore interface {
	Create(ctx context.Context, projectID uuid.UUID, title string, position int) (*model.Column, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Column, error)
	Rename(ctx context.Context, id uuid.UUID, title string) (*model.Column, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, newPosition int) (*model.Column, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskStore interface {
	Create(ctx context.Context, columnID uuid.UUID, title string, description *string, position int) (*model.Task, error)
	ListByColumn(ctx context.Context, columnID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, title string, description *string) (*model.Task, error)
	UpdatePosition(ctx context.Context, id, columnID uuid.UUID, newPosition int) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemberStore interface {
	Add(ctx context.Context, projectID, userID uuid.UUID, role string) (*model.ProjectMember, error)
	UpdateRole(ctx context.Context, projectID, userID uuid.UUID, role string) (*model.ProjectMember, error)
	Remove(ctx context.Context, projectID, userID uuid.UUID) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMember, error)
}

type AssignmentStore interface {
	AssignUserToTask(ctx context.Context, taskID, userID uuid.UUID) (*model.TaskAssignment, error)
	RemoveUserFromTask(ctx context.Context, taskID, userID uuid.UUID) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.TaskAssignment, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// Gateway groups the stores the board needs. The server wires it with the
// gorm repositories; tests use mocks.
type Gateway struct {
	Projects    ProjectStore
	Columns     ColumnStore
	Tasks       TaskStore
	Members     MemberStore
	Assignments AssignmentStore
	Users       UserStore
}
