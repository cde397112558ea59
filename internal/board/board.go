package board

import (
	"taskboard/internal/model"

	"github.com/google/uuid"
)

// Board is the read model of one project: its columns in position order,
// each with its tasks in position order.
type Board struct {
	Project model.Project `json:"project"`
	Columns []Column      `json:"columns"`
}

type Column struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	Tasks     []Task    `json:"tasks"`
}

type Task struct {
	ID            uuid.UUID    `json:"id"`
	ColumnID      uuid.UUID    `json:"column_id"`
	Title         string       `json:"title"`
	Description   *string      `json:"description,omitempty"`
	Position      int          `json:"position"`
	AssignedUsers []model.User `json:"assigned_users"`
}

// Member is a user together with their role on a project.
type Member struct {
	User model.User `json:"user"`
	Role string     `json:"role"`
}

func newColumn(c model.Column) Column {
	return Column{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		Title:     c.Title,
		Position:  c.Position,
		Tasks:     []Task{},
	}
}

func newTask(t model.Task, users []model.User) Task {
	if users == nil {
		users = []model.User{}
	}
	return Task{
		ID:            t.ID,
		ColumnID:      t.ColumnID,
		Title:         t.Title,
		Description:   t.Description,
		Position:      t.Position,
		AssignedUsers: users,
	}
}

func (b *Board) clone() *Board {
	out := &Board{Project: b.Project, Columns: make([]Column, len(b.Columns))}
	for i, c := range b.Columns {
		out.Columns[i] = c.clone()
	}
	return out
}

func (c Column) clone() Column {
	tasks := make([]Task, len(c.Tasks))
	for i, t := range c.Tasks {
		tasks[i] = t.clone()
	}
	c.Tasks = tasks
	return c
}

func (t Task) clone() Task {
	t.AssignedUsers = append([]model.User{}, t.AssignedUsers...)
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	return t
}

func (b *Board) columnIndex(id uuid.UUID) int {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return i
		}
	}
	return -1
}

// findTask returns the column and task indexes of the task, or -1, -1.
func (b *Board) findTask(id uuid.UUID) (int, int) {
	for ci := range b.Columns {
		if ti := b.Columns[ci].taskIndex(id); ti >= 0 {
			return ci, ti
		}
	}
	return -1, -1
}

func (c *Column) taskIndex(id uuid.UUID) int {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Column) renumber() {
	for i := range c.Tasks {
		c.Tasks[i].Position = i
	}
}

func (b *Board) renumber() {
	for i := range b.Columns {
		b.Columns[i].Position = i
	}
}

func (t *Task) hasAssignee(id uuid.UUID) bool {
	for _, u := range t.AssignedUsers {
		if u.ID == id {
			return true
		}
	}
	return false
}

func (t *Task) removeAssignee(id uuid.UUID) {
	kept := t.AssignedUsers[:0]
	for _, u := range t.AssignedUsers {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	t.AssignedUsers = kept
}

func insertTask(tasks []Task, i int, t Task) []Task {
	tasks = append(tasks, Task{})
	copy(tasks[i+1:], tasks[i:])
	tasks[i] = t
	return tasks
}

func insertColumn(columns []Column, i int, c Column) []Column {
	columns = append(columns, Column{})
	copy(columns[i+1:], columns[i:])
	columns[i] = c
	return columns
}
