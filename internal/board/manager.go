package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"taskboard/internal/logger"
	"taskboard/internal/model"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

var (
	ErrInvalidTitle    = errors.New("title must not be empty")
	ErrProjectNotFound = errors.New("project not found")
	ErrColumnNotFound  = errors.New("column not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoActiveProject = errors.New("no active project")
	ErrInvalidRole     = errors.New("role must be owner or member")
)

// Manager owns the in-memory boards of one user. Every mutation is committed
// to the store first and applied locally only when the store accepted it.
// The lock is never held across a store call.
type Manager struct {
	gw   Gateway
	user model.User
	log  *logger.Logger

	mu       sync.RWMutex
	order    []uuid.UUID
	boards   map[uuid.UUID]*Board
	activeID uuid.UUID
	titles   map[uuid.UUID]string
	users    map[uuid.UUID]model.User
}

// NewManager seeds a manager with already loaded boards. The first board
// becomes the active one.
func NewManager(gw Gateway, user model.User, boards []*Board, log *logger.Logger) *Manager {
	m := &Manager{
		gw:     gw,
		user:   user,
		log:    log,
		boards: make(map[uuid.UUID]*Board, len(boards)),
		titles: make(map[uuid.UUID]string),
		users:  map[uuid.UUID]model.User{user.ID: user},
	}
	for _, b := range boards {
		m.order = append(m.order, b.Project.ID)
		m.boards[b.Project.ID] = b
		for _, c := range b.Columns {
			m.titles[c.ID] = c.Title
			for _, t := range c.Tasks {
				for _, u := range t.AssignedUsers {
					m.users[u.ID] = u
				}
			}
		}
	}
	if len(m.order) > 0 {
		m.activeID = m.order[0]
	}
	return m
}

func (m *Manager) User() model.User { return m.user }

// Projects returns the user's projects in display order.
func (m *Manager) Projects() []model.Project {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Project, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.boards[id].Project)
	}
	return out
}

func (m *Manager) ActiveProjectID() uuid.UUID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeID
}

func (m *Manager) ActiveBoard() (*Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, err := m.activeLocked()
	if err != nil {
		return nil, err
	}
	return b.clone(), nil
}

func (m *Manager) Board(projectID uuid.UUID) (*Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.boards[projectID]
	if !ok {
		return nil, ErrProjectNotFound
	}
	return b.clone(), nil
}

func (m *Manager) SelectProject(projectID uuid.UUID) (*Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.boards[projectID]
	if !ok {
		return nil, ErrProjectNotFound
	}
	m.activeID = projectID
	return b.clone(), nil
}

// ColumnTitle looks up a column title in the registry.
func (m *Manager) ColumnTitle(columnID uuid.UUID) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	title, ok := m.titles[columnID]
	return title, ok
}

// ColumnTaskCount reports how many tasks a column of the active project holds.
func (m *Manager) ColumnTaskCount(columnID uuid.UUID) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, err := m.activeLocked()
	if err != nil {
		return 0, false
	}
	ci := b.columnIndex(columnID)
	if ci < 0 {
		return 0, false
	}
	return len(b.Columns[ci].Tasks), true
}

// Columns

func (m *Manager) CreateColumn(ctx context.Context, title string) (Column, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return Column{}, err
	}

	m.mu.RLock()
	b, err := m.activeLocked()
	if err != nil {
		m.mu.RUnlock()
		return Column{}, err
	}
	projectID := b.Project.ID
	position := len(b.Columns)
	m.mu.RUnlock()

	row, err := m.gw.Columns.Create(ctx, projectID, title, position)
	if err != nil {
		return Column{}, fmt.Errorf("create column: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.boards[projectID]
	if !ok {
		return newColumn(*row), nil
	}
	b.Columns = append(b.Columns, newColumn(*row))
	b.renumber()
	m.titles[row.ID] = row.Title
	return b.Columns[len(b.Columns)-1].clone(), nil
}

func (m *Manager) RenameColumn(ctx context.Context, columnID uuid.UUID, title string) (Column, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return Column{}, err
	}

	m.mu.RLock()
	b, _, err := m.locateColumnLocked(columnID)
	m.mu.RUnlock()
	if err != nil {
		return Column{}, err
	}
	projectID := b.Project.ID

	row, err := m.gw.Columns.Rename(ctx, columnID, title)
	if err != nil {
		return Column{}, fmt.Errorf("rename column: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ci, err := m.columnInLocked(projectID, columnID)
	if err != nil {
		return newColumn(*row), nil
	}
	b.Columns[ci].Title = title
	m.titles[columnID] = title
	return b.Columns[ci].clone(), nil
}

// DeleteColumn removes the column with all its tasks and closes the gap in
// the remaining column positions.
func (m *Manager) DeleteColumn(ctx context.Context, columnID uuid.UUID) error {
	m.mu.RLock()
	b, _, err := m.locateColumnLocked(columnID)
	m.mu.RUnlock()
	if err != nil {
		return err
	}
	projectID := b.Project.ID

	if err := m.gw.Columns.Delete(ctx, columnID); err != nil {
		return fmt.Errorf("delete column: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.titles, columnID)
	b, ci, err := m.columnInLocked(projectID, columnID)
	if err != nil {
		return nil
	}
	b.Columns = append(b.Columns[:ci], b.Columns[ci+1:]...)
	b.renumber()
	return nil
}

// MoveColumn places the column at destinationIndex, clamped to the board.
func (m *Manager) MoveColumn(ctx context.Context, columnID uuid.UUID, destinationIndex int) error {
	m.mu.RLock()
	b, ci, err := m.locateColumnLocked(columnID)
	if err != nil {
		m.mu.RUnlock()
		return err
	}
	dest := clamp(destinationIndex, len(b.Columns)-1)
	projectID := b.Project.ID
	m.mu.RUnlock()

	if dest == ci {
		return nil
	}

	if _, err := m.gw.Columns.UpdatePosition(ctx, columnID, dest); err != nil {
		return fmt.Errorf("move column: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ci, err = m.columnInLocked(projectID, columnID)
	if err != nil {
		return nil
	}
	col := b.Columns[ci]
	b.Columns = append(b.Columns[:ci], b.Columns[ci+1:]...)
	b.Columns = insertColumn(b.Columns, clamp(dest, len(b.Columns)), col)
	b.renumber()
	return nil
}

// Tasks

// CreateTask appends a task to the column and assigns the selected users one
// by one. Assignment failures are logged and skipped; the returned task holds
// the users that were assigned.
func (m *Manager) CreateTask(ctx context.Context, columnID uuid.UUID, title string, description *string, assigneeIDs []uuid.UUID) (Task, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return Task{}, err
	}

	m.mu.RLock()
	b, ci, err := m.locateColumnLocked(columnID)
	if err != nil {
		m.mu.RUnlock()
		return Task{}, err
	}
	position := len(b.Columns[ci].Tasks)
	projectID := b.Project.ID
	m.mu.RUnlock()

	row, err := m.gw.Tasks.Create(ctx, columnID, title, description, position)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	task := newTask(*row, nil)
	var merr *multierror.Error
	for _, userID := range dedupe(assigneeIDs) {
		u, err := m.assign(ctx, row.ID, userID)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		task.AssignedUsers = append(task.AssignedUsers, u)
	}
	if err := merr.ErrorOrNil(); err != nil {
		m.log.Warnw("task created with failed assignments", "task_id", row.ID, "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ci, err = m.columnInLocked(projectID, columnID)
	if err != nil {
		return task, nil
	}
	col := &b.Columns[ci]
	col.Tasks = append(col.Tasks, task)
	col.renumber()
	return col.Tasks[len(col.Tasks)-1].clone(), nil
}

// UpdateTask saves title and description, then reconciles the assignees:
// users no longer selected are removed and newly selected ones added, with
// one store call per changed user. On failure the local task reflects what
// was committed before it.
func (m *Manager) UpdateTask(ctx context.Context, taskID uuid.UUID, title string, description *string, assigneeIDs []uuid.UUID) (Task, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return Task{}, err
	}

	m.mu.RLock()
	current, projectID, err := m.taskLocked(taskID)
	m.mu.RUnlock()
	if err != nil {
		return Task{}, err
	}

	if _, err := m.gw.Tasks.Update(ctx, taskID, title, description); err != nil {
		return Task{}, fmt.Errorf("update task: %w", err)
	}
	m.applyTask(projectID, taskID, func(t *Task) {
		t.Title = title
		t.Description = description
	})

	next := dedupe(assigneeIDs)
	wanted := make(map[uuid.UUID]bool, len(next))
	for _, id := range next {
		wanted[id] = true
	}

	for _, u := range current.AssignedUsers {
		if wanted[u.ID] {
			continue
		}
		if err := m.gw.Assignments.RemoveUserFromTask(ctx, taskID, u.ID); err != nil {
			return m.taskSnapshot(projectID, taskID), fmt.Errorf("unassign user %s: %w", u.ID, err)
		}
		userID := u.ID
		m.applyTask(projectID, taskID, func(t *Task) { t.removeAssignee(userID) })
	}

	for _, userID := range next {
		if current.hasAssignee(userID) {
			continue
		}
		u, err := m.assign(ctx, taskID, userID)
		if err != nil {
			return m.taskSnapshot(projectID, taskID), err
		}
		m.applyTask(projectID, taskID, func(t *Task) {
			if !t.hasAssignee(u.ID) {
				t.AssignedUsers = append(t.AssignedUsers, u)
			}
		})
	}

	return m.taskSnapshot(projectID, taskID), nil
}

// DeleteTask removes the task from columnID. A nil columnID means the task
// is looked up on the active board.
func (m *Manager) DeleteTask(ctx context.Context, taskID, columnID uuid.UUID) error {
	m.mu.RLock()
	b, ci, _, err := m.locateTaskLocked(taskID)
	if err == nil && columnID != uuid.Nil && b.Columns[ci].ID != columnID {
		err = ErrTaskNotFound
	}
	m.mu.RUnlock()
	if err != nil {
		return err
	}
	projectID := b.Project.ID

	if err := m.gw.Tasks.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ci, ti, err := m.taskInLocked(projectID, taskID)
	if err != nil {
		return nil
	}
	col := &b.Columns[ci]
	col.Tasks = append(col.Tasks[:ti], col.Tasks[ti+1:]...)
	col.renumber()
	return nil
}

// MoveTask moves a task to destinationIndex of toColumnID. The index is
// clamped to the destination. Moving a task onto its own position does
// nothing and makes no store call.
func (m *Manager) MoveTask(ctx context.Context, taskID, fromColumnID, toColumnID uuid.UUID, destinationIndex int) error {
	m.mu.RLock()
	b, err := m.activeLocked()
	if err != nil {
		m.mu.RUnlock()
		return err
	}
	from := b.columnIndex(fromColumnID)
	to := b.columnIndex(toColumnID)
	if from < 0 || to < 0 {
		m.mu.RUnlock()
		return ErrColumnNotFound
	}
	ti := b.Columns[from].taskIndex(taskID)
	if ti < 0 {
		m.mu.RUnlock()
		return ErrTaskNotFound
	}
	limit := len(b.Columns[to].Tasks)
	if from == to {
		limit--
	}
	dest := clamp(destinationIndex, limit)
	projectID := b.Project.ID
	m.mu.RUnlock()

	if from == to && dest == ti {
		return nil
	}

	if _, err := m.gw.Tasks.UpdatePosition(ctx, taskID, toColumnID, dest); err != nil {
		return fmt.Errorf("move task: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ci, ti, err := m.taskInLocked(projectID, taskID)
	if err != nil {
		return nil
	}
	to = b.columnIndex(toColumnID)
	if to < 0 {
		return nil
	}

	task := b.Columns[ci].Tasks[ti]
	src := &b.Columns[ci]
	src.Tasks = append(src.Tasks[:ti], src.Tasks[ti+1:]...)
	src.renumber()

	task.ColumnID = toColumnID
	dst := &b.Columns[to]
	dst.Tasks = insertTask(dst.Tasks, clamp(dest, len(dst.Tasks)), task)
	dst.renumber()
	return nil
}

// AssignUser adds a single assignee. Assigning an existing assignee is a no-op.
func (m *Manager) AssignUser(ctx context.Context, taskID, userID uuid.UUID) (Task, error) {
	m.mu.RLock()
	current, projectID, err := m.taskLocked(taskID)
	m.mu.RUnlock()
	if err != nil {
		return Task{}, err
	}
	if current.hasAssignee(userID) {
		return current, nil
	}

	u, err := m.assign(ctx, taskID, userID)
	if err != nil {
		return Task{}, err
	}
	m.applyTask(projectID, taskID, func(t *Task) {
		if !t.hasAssignee(u.ID) {
			t.AssignedUsers = append(t.AssignedUsers, u)
		}
	})
	return m.taskSnapshot(projectID, taskID), nil
}

func (m *Manager) UnassignUser(ctx context.Context, taskID, userID uuid.UUID) (Task, error) {
	m.mu.RLock()
	current, projectID, err := m.taskLocked(taskID)
	m.mu.RUnlock()
	if err != nil {
		return Task{}, err
	}
	if !current.hasAssignee(userID) {
		return current, nil
	}

	if err := m.gw.Assignments.RemoveUserFromTask(ctx, taskID, userID); err != nil {
		return Task{}, fmt.Errorf("unassign user %s: %w", userID, err)
	}
	m.applyTask(projectID, taskID, func(t *Task) { t.removeAssignee(userID) })
	return m.taskSnapshot(projectID, taskID), nil
}

// Projects

// CreateProject creates a project with the default columns, adds the given
// users as members and makes it the active project. Member failures are
// logged and skipped.
func (m *Manager) CreateProject(ctx context.Context, name string, memberIDs []uuid.UUID) (*Board, error) {
	name, err := cleanTitle(name)
	if err != nil {
		return nil, err
	}

	b, err := provisionProject(ctx, m.gw, name, m.user.ID)
	if err != nil {
		return nil, err
	}

	var merr *multierror.Error
	for _, userID := range dedupe(memberIDs) {
		if userID == m.user.ID {
			continue
		}
		if _, err := m.gw.Members.Add(ctx, b.Project.ID, userID, model.RoleMember); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("add member %s: %w", userID, err))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		m.log.Warnw("project created with failed memberships", "project_id", b.Project.ID, "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.order = append([]uuid.UUID{b.Project.ID}, m.order...)
	m.boards[b.Project.ID] = b
	for _, c := range b.Columns {
		m.titles[c.ID] = c.Title
	}
	m.activeID = b.Project.ID
	return b.clone(), nil
}

func (m *Manager) UpdateProject(ctx context.Context, projectID uuid.UUID, name string) (model.Project, error) {
	name, err := cleanTitle(name)
	if err != nil {
		return model.Project{}, err
	}

	m.mu.RLock()
	_, ok := m.boards[projectID]
	m.mu.RUnlock()
	if !ok {
		return model.Project{}, ErrProjectNotFound
	}

	row, err := m.gw.Projects.Update(ctx, projectID, name)
	if err != nil {
		return model.Project{}, fmt.Errorf("update project: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.boards[projectID]
	if !ok {
		return model.Project{}, ErrProjectNotFound
	}
	b.Project.Name = row.Name
	b.Project.UpdatedAt = row.UpdatedAt
	return b.Project, nil
}

// DeleteProject deletes the project. When it was the active one the first
// remaining project becomes active, if any.
func (m *Manager) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	m.mu.RLock()
	_, ok := m.boards[projectID]
	m.mu.RUnlock()
	if !ok {
		return ErrProjectNotFound
	}

	if err := m.gw.Projects.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.boards[projectID]
	if !ok {
		return nil
	}
	for _, c := range b.Columns {
		delete(m.titles, c.ID)
	}
	delete(m.boards, projectID)
	for i, id := range m.order {
		if id == projectID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.activeID == projectID {
		m.activeID = uuid.Nil
		if len(m.order) > 0 {
			m.activeID = m.order[0]
		}
	}
	return nil
}

// Members

// Members lists the memberships of a project. A member whose user record
// cannot be read is left out rather than shown with made-up details.
func (m *Manager) Members(ctx context.Context, projectID uuid.UUID) ([]Member, error) {
	if err := m.requireProject(projectID); err != nil {
		return nil, err
	}

	rows, err := m.gw.Members.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	out := make([]Member, 0, len(rows))
	for _, row := range rows {
		u, err := m.lookupUser(ctx, row.UserID)
		if err != nil {
			m.log.Warnw("skipping member without user record", "project_id", projectID, "user_id", row.UserID, "error", err)
			continue
		}
		out = append(out, Member{User: u, Role: row.Role})
	}
	return out, nil
}

// AddMember makes an existing user a member of the project.
func (m *Manager) AddMember(ctx context.Context, projectID, userID uuid.UUID) (Member, error) {
	if err := m.requireProject(projectID); err != nil {
		return Member{}, err
	}
	u, err := m.lookupUser(ctx, userID)
	if err != nil {
		return Member{}, fmt.Errorf("resolve member %s: %w", userID, err)
	}

	row, err := m.gw.Members.Add(ctx, projectID, userID, model.RoleMember)
	if err != nil {
		return Member{}, fmt.Errorf("add member %s: %w", userID, err)
	}
	return Member{User: u, Role: row.Role}, nil
}

func (m *Manager) UpdateMemberRole(ctx context.Context, projectID, userID uuid.UUID, role string) (Member, error) {
	if role != model.RoleOwner && role != model.RoleMember {
		return Member{}, ErrInvalidRole
	}
	if err := m.requireProject(projectID); err != nil {
		return Member{}, err
	}
	u, err := m.lookupUser(ctx, userID)
	if err != nil {
		return Member{}, fmt.Errorf("resolve member %s: %w", userID, err)
	}

	row, err := m.gw.Members.UpdateRole(ctx, projectID, userID, role)
	if err != nil {
		return Member{}, fmt.Errorf("update member %s: %w", userID, err)
	}
	return Member{User: u, Role: row.Role}, nil
}

// RemoveMember ends a membership. Task assignments of the user are kept.
func (m *Manager) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	if err := m.requireProject(projectID); err != nil {
		return err
	}
	if err := m.gw.Members.Remove(ctx, projectID, userID); err != nil {
		return fmt.Errorf("remove member %s: %w", userID, err)
	}
	return nil
}

// helpers

// assign commits one assignment and returns the assigned user. The user is
// resolved first so an unknown id never reaches the store.
func (m *Manager) assign(ctx context.Context, taskID, userID uuid.UUID) (model.User, error) {
	u, err := m.lookupUser(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("resolve assignee %s: %w", userID, err)
	}
	if _, err := m.gw.Assignments.AssignUserToTask(ctx, taskID, userID); err != nil {
		return model.User{}, fmt.Errorf("assign user %s: %w", userID, err)
	}
	return u, nil
}

func (m *Manager) lookupUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	m.mu.RLock()
	u, ok := m.users[userID]
	m.mu.RUnlock()
	if ok {
		return u, nil
	}

	row, err := m.gw.Users.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, err
	}

	m.mu.Lock()
	m.users[userID] = *row
	m.mu.Unlock()
	return *row, nil
}

func (m *Manager) requireProject(projectID uuid.UUID) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.boards[projectID]; !ok {
		return ErrProjectNotFound
	}
	return nil
}

func (m *Manager) activeLocked() (*Board, error) {
	if m.activeID == uuid.Nil {
		return nil, ErrNoActiveProject
	}
	b, ok := m.boards[m.activeID]
	if !ok {
		return nil, ErrNoActiveProject
	}
	return b, nil
}

// The locate helpers resolve an intent against the active board before the
// store call. Once the store has committed, changes are applied through the
// *In helpers to the project captured beforehand, which stays correct when
// another request switches the active project in between.

func (m *Manager) locateColumnLocked(columnID uuid.UUID) (*Board, int, error) {
	b, err := m.activeLocked()
	if err != nil {
		return nil, -1, err
	}
	return m.columnInLocked(b.Project.ID, columnID)
}

func (m *Manager) locateTaskLocked(taskID uuid.UUID) (*Board, int, int, error) {
	b, err := m.activeLocked()
	if err != nil {
		return nil, -1, -1, err
	}
	return m.taskInLocked(b.Project.ID, taskID)
}

func (m *Manager) columnInLocked(projectID, columnID uuid.UUID) (*Board, int, error) {
	b, ok := m.boards[projectID]
	if !ok {
		return nil, -1, ErrProjectNotFound
	}
	ci := b.columnIndex(columnID)
	if ci < 0 {
		return nil, -1, ErrColumnNotFound
	}
	return b, ci, nil
}

func (m *Manager) taskInLocked(projectID, taskID uuid.UUID) (*Board, int, int, error) {
	b, ok := m.boards[projectID]
	if !ok {
		return nil, -1, -1, ErrProjectNotFound
	}
	ci, ti := b.findTask(taskID)
	if ci < 0 {
		return nil, -1, -1, ErrTaskNotFound
	}
	return b, ci, ti, nil
}

// taskLocked returns a copy of a task of the active board and its project.
func (m *Manager) taskLocked(taskID uuid.UUID) (Task, uuid.UUID, error) {
	b, ci, ti, err := m.locateTaskLocked(taskID)
	if err != nil {
		return Task{}, uuid.Nil, err
	}
	return b.Columns[ci].Tasks[ti].clone(), b.Project.ID, nil
}

func (m *Manager) applyTask(projectID, taskID uuid.UUID, fn func(t *Task)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ci, ti, err := m.taskInLocked(projectID, taskID)
	if err != nil {
		return
	}
	fn(&b.Columns[ci].Tasks[ti])
}

func (m *Manager) taskSnapshot(projectID, taskID uuid.UUID) Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ci, ti, err := m.taskInLocked(projectID, taskID)
	if err != nil {
		return Task{}
	}
	return b.Columns[ci].Tasks[ti].clone()
}

func cleanTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidTitle
	}
	return s, nil
}

func clamp(i, hi int) int {
	if i < 0 {
		return 0
	}
	if i > hi {
		return hi
	}
	return i
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
