package board_test

import (
	"context"

	"taskboard/internal/board"
	"taskboard/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProjectStore struct{ mock.Mock }

func (m *MockProjectStore) Create(ctx context.Context, name string, ownerID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, name, ownerID)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectStore) Update(ctx context.Context, id uuid.UUID, name string) (*model.Project, error) {
	args := m.Called(ctx, id, name)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProjectStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockColumnStore struct{ mock.Mock }

func (m *MockColumnStore) Create(ctx context.Context, projectID uuid.UUID, title string, position int) (*model.Column, error) {
	args := m.Called(ctx, projectID, title, position)
	if c := args.Get(0); c != nil {
		return c.(*model.Column), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockColumnStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Column, error) {
	args := m.Called(ctx, projectID)
	if c := args.Get(0); c != nil {
		return c.([]model.Column), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockColumnStore) Rename(ctx context.Context, id uuid.UUID, title string) (*model.Column, error) {
	args := m.Called(ctx, id, title)
	if c := args.Get(0); c != nil {
		return c.(*model.Column), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockColumnStore) UpdatePosition(ctx context.Context, id uuid.UUID, newPosition int) (*model.Column, error) {
	args := m.Called(ctx, id, newPosition)
	if c := args.Get(0); c != nil {
		return c.(*model.Column), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockColumnStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTaskStore struct{ mock.Mock }

func (m *MockTaskStore) Create(ctx context.Context, columnID uuid.UUID, title string, description *string, position int) (*model.Task, error) {
	args := m.Called(ctx, columnID, title, description, position)
	if t := args.Get(0); t != nil {
		return t.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) ListByColumn(ctx context.Context, columnID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, columnID)
	if t := args.Get(0); t != nil {
		return t.([]model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) Update(ctx context.Context, id uuid.UUID, title string, description *string) (*model.Task, error) {
	args := m.Called(ctx, id, title, description)
	if t := args.Get(0); t != nil {
		return t.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) UpdatePosition(ctx context.Context, id, columnID uuid.UUID, newPosition int) (*model.Task, error) {
	args := m.Called(ctx, id, columnID, newPosition)
	if t := args.Get(0); t != nil {
		return t.(*model.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockMemberStore struct{ mock.Mock }

func (m *MockMemberStore) Add(ctx context.Context, projectID, userID uuid.UUID, role string) (*model.ProjectMember, error) {
	args := m.Called(ctx, projectID, userID, role)
	if pm := args.Get(0); pm != nil {
		return pm.(*model.ProjectMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberStore) UpdateRole(ctx context.Context, projectID, userID uuid.UUID, role string) (*model.ProjectMember, error) {
	args := m.Called(ctx, projectID, userID, role)
	if pm := args.Get(0); pm != nil {
		return pm.(*model.ProjectMember), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberStore) Remove(ctx context.Context, projectID, userID uuid.UUID) error {
	return m.Called(ctx, projectID, userID).Error(0)
}

func (m *MockMemberStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMember, error) {
	args := m.Called(ctx, projectID)
	if pm := args.Get(0); pm != nil {
		return pm.([]model.ProjectMember), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAssignmentStore struct{ mock.Mock }

func (m *MockAssignmentStore) AssignUserToTask(ctx context.Context, taskID, userID uuid.UUID) (*model.TaskAssignment, error) {
	args := m.Called(ctx, taskID, userID)
	if a := args.Get(0); a != nil {
		return a.(*model.TaskAssignment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssignmentStore) RemoveUserFromTask(ctx context.Context, taskID, userID uuid.UUID) error {
	return m.Called(ctx, taskID, userID).Error(0)
}

func (m *MockAssignmentStore) ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.TaskAssignment, error) {
	args := m.Called(ctx, taskID)
	if a := args.Get(0); a != nil {
		return a.([]model.TaskAssignment), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserStore struct{ mock.Mock }

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mocks struct {
	projects    *MockProjectStore
	columns     *MockColumnStore
	tasks       *MockTaskStore
	members     *MockMemberStore
	assignments *MockAssignmentStore
	users       *MockUserStore
}

func newGateway() (board.Gateway, *mocks) {
	m := &mocks{
		projects:    new(MockProjectStore),
		columns:     new(MockColumnStore),
		tasks:       new(MockTaskStore),
		members:     new(MockMemberStore),
		assignments: new(MockAssignmentStore),
		users:       new(MockUserStore),
	}
	gw := board.Gateway{
		Projects:    m.projects,
		Columns:     m.columns,
		Tasks:       m.tasks,
		Members:     m.members,
		Assignments: m.assignments,
		Users:       m.users,
	}
	return gw, m
}
