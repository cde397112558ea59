package dnd

import (
	"sync"

	"taskboard/internal/logger"

	"github.com/google/uuid"
)

// Registry holds one engine per user.
type Registry struct {
	log *logger.Logger

	mu      sync.Mutex
	engines map[uuid.UUID]*Engine
}

func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{log: log, engines: make(map[uuid.UUID]*Engine)}
}

// For returns the user's engine bound to board. A board that changed since
// the engine was created (the workspace was reloaded) gets a fresh engine.
func (r *Registry) For(userID uuid.UUID, board Board) *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.engines[userID]; ok && e.board == board {
		return e
	}
	e := NewEngine(board, r.log)
	r.engines[userID] = e
	return e
}

func (r *Registry) Evict(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.engines, userID)
}
