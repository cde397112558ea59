package board

import (
	"context"
	"sync"

	"taskboard/internal/logger"
	"taskboard/internal/model"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Workspaces keeps one Manager per signed-in user. A manager is built from
// the store on first access and dropped on sign-out.
type Workspaces struct {
	gw     Gateway
	loader *Loader
	log    *logger.Logger

	mu       sync.Mutex
	managers map[uuid.UUID]*Manager
	loads    singleflight.Group
}

func NewWorkspaces(gw Gateway, loader *Loader, log *logger.Logger) *Workspaces {
	return &Workspaces{
		gw:       gw,
		loader:   loader,
		log:      log,
		managers: make(map[uuid.UUID]*Manager),
	}
}

// Get returns the user's manager, loading the user's boards if needed.
// Concurrent first requests of one user share a single load, so a new user
// is provisioned one default project.
func (w *Workspaces) Get(ctx context.Context, user model.User) (*Manager, error) {
	if m, ok := w.cached(user.ID); ok {
		return m, nil
	}

	v, err, _ := w.loads.Do(user.ID.String(), func() (interface{}, error) {
		if m, ok := w.cached(user.ID); ok {
			return m, nil
		}

		// The load outlives the request that started it; others may be waiting on it.
		boards, err := w.loader.LoadAll(context.WithoutCancel(ctx), user)
		if err != nil {
			return nil, err
		}
		m := NewManager(w.gw, user, boards, w.log.Component("manager"))

		w.mu.Lock()
		w.managers[user.ID] = m
		w.mu.Unlock()
		w.log.Debugw("workspace loaded", "user_id", user.ID, "projects", len(boards))
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Manager), nil
}

func (w *Workspaces) cached(userID uuid.UUID) (*Manager, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, ok := w.managers[userID]
	return m, ok
}

// Evict forgets the user's manager. The next Get reloads from the store.
func (w *Workspaces) Evict(userID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.managers, userID)
}
