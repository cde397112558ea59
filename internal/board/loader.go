package board

import (
	"context"
	"fmt"

	"taskboard/internal/logger"
	"taskboard/internal/model"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultColumnTitles are the columns every new project starts with.
var DefaultColumnTitles = []string{"To do", "In progress", "Done"}

// Loader assembles boards from the store. Project and column reads are
// required; task, assignment and user reads degrade to empty lists so one
// bad row does not hide the whole board.
type Loader struct {
	gw                 Gateway
	concurrency        int
	defaultProjectName string
	log                *logger.Logger
}

func NewLoader(gw Gateway, concurrency int, defaultProjectName string, log *logger.Logger) *Loader {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Loader{
		gw:                 gw,
		concurrency:        concurrency,
		defaultProjectName: defaultProjectName,
		log:                log,
	}
}

// Load builds the board of a single project.
func (l *Loader) Load(ctx context.Context, projectID uuid.UUID) (*Board, error) {
	project, err := l.gw.Projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", projectID, err)
	}
	return l.loadProject(ctx, *project)
}

// LoadAll builds every board visible to the user, newest project first. A
// user with no projects gets a default one provisioned.
func (l *Loader) LoadAll(ctx context.Context, user model.User) ([]*Board, error) {
	projects, err := l.gw.Projects.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	if len(projects) == 0 {
		b, err := provisionProject(ctx, l.gw, l.defaultProjectName, user.ID)
		if err != nil {
			return nil, fmt.Errorf("provision default project: %w", err)
		}
		l.log.Infow("provisioned default project", "user_id", user.ID, "project_id", b.Project.ID)
		return []*Board{b}, nil
	}

	boards := make([]*Board, 0, len(projects))
	for _, p := range projects {
		b, err := l.loadProject(ctx, p)
		if err != nil {
			l.log.Warnw("failed to load project, showing it without columns",
				"project_id", p.ID, "error", err)
			b = &Board{Project: p, Columns: []Column{}}
		}
		boards = append(boards, b)
	}
	return boards, nil
}

func (l *Loader) loadProject(ctx context.Context, project model.Project) (*Board, error) {
	rows, err := l.gw.Columns.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}

	b := &Board{Project: project, Columns: make([]Column, len(rows))}
	for i, c := range rows {
		b.Columns[i] = newColumn(c)
	}

	taskRows := l.loadTasks(ctx, b.Columns)

	// Flatten so the next levels can fan out over every task of the board.
	var tasks []model.Task
	var owners []int
	for ci, rows := range taskRows {
		for _, t := range rows {
			tasks = append(tasks, t)
			owners = append(owners, ci)
		}
	}

	assignees := l.loadAssignees(ctx, tasks)

	for i, t := range tasks {
		col := &b.Columns[owners[i]]
		col.Tasks = append(col.Tasks, newTask(t, assignees[i]))
	}
	return b, nil
}

func (l *Loader) loadTasks(ctx context.Context, columns []Column) [][]model.Task {
	out := make([][]model.Task, len(columns))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i := range columns {
		columnID := columns[i].ID
		g.Go(func() error {
			tasks, err := l.gw.Tasks.ListByColumn(ctx, columnID)
			if err != nil {
				l.log.Warnw("failed to load tasks, column shown empty", "column_id", columnID, "error", err)
				return nil
			}
			out[i] = tasks
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// loadAssignees resolves the assigned users of every task. A task whose
// assignments or any of whose users cannot be read gets an empty list.
func (l *Loader) loadAssignees(ctx context.Context, tasks []model.Task) [][]model.User {
	assignments := make([][]model.TaskAssignment, len(tasks))
	failed := make([]bool, len(tasks))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i := range tasks {
		taskID := tasks[i].ID
		g.Go(func() error {
			rows, err := l.gw.Assignments.ListByTask(ctx, taskID)
			if err != nil {
				l.log.Warnw("failed to load assignments", "task_id", taskID, "error", err)
				failed[i] = true
				return nil
			}
			assignments[i] = rows
			return nil
		})
	}
	_ = g.Wait()

	type lookup struct {
		task   int
		userID uuid.UUID
	}
	var lookups []lookup
	for i, rows := range assignments {
		for _, a := range rows {
			lookups = append(lookups, lookup{task: i, userID: a.UserID})
		}
	}

	users := make([]*model.User, len(lookups))
	g = errgroup.Group{}
	g.SetLimit(l.concurrency)
	for k := range lookups {
		lk := lookups[k]
		g.Go(func() error {
			u, err := l.gw.Users.GetByID(ctx, lk.userID)
			if err != nil {
				l.log.Warnw("failed to load assigned user", "task_id", tasks[lk.task].ID, "user_id", lk.userID, "error", err)
				return nil
			}
			users[k] = u
			return nil
		})
	}
	_ = g.Wait()

	// failed is only written by the goroutines above, all of which are done.
	for k, lk := range lookups {
		if users[k] == nil {
			failed[lk.task] = true
		}
	}

	out := make([][]model.User, len(tasks))
	for k, lk := range lookups {
		if failed[lk.task] {
			continue
		}
		out[lk.task] = append(out[lk.task], *users[k])
	}
	return out
}

// provisionProject creates a project owned by ownerID with the default
// columns. It fails if the project or any of its columns cannot be created.
func provisionProject(ctx context.Context, gw Gateway, name string, ownerID uuid.UUID) (*Board, error) {
	project, err := gw.Projects.Create(ctx, name, ownerID)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	project.Role = model.RoleOwner

	b := &Board{Project: *project, Columns: make([]Column, 0, len(DefaultColumnTitles))}
	for i, title := range DefaultColumnTitles {
		c, err := gw.Columns.Create(ctx, project.ID, title, i)
		if err != nil {
			return nil, fmt.Errorf("create column %q: %w", title, err)
		}
		b.Columns = append(b.Columns, newColumn(*c))
	}
	return b, nil
}
