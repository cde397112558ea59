package handler

import (
	"errors"
	"net/http"

	"taskboard/internal/board"
	"taskboard/internal/dnd"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/notify"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Deps are the collaborators shared by every handler.
type Deps struct {
	Workspaces *board.Workspaces
	Engines    *dnd.Registry
	Notifier   notify.Sink
	Log        *logger.Logger
}

type base struct {
	Deps
}

// currentUser returns the user stored by middleware.ResolveUser.
func currentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(middleware.UserKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return model.User{}, false
	}
	user, ok := v.(model.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user in context"})
		return model.User{}, false
	}
	return user, true
}

// manager returns the caller's board manager, loading it on first use.
func (h *base) manager(c *gin.Context) (*board.Manager, bool) {
	user, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	m, err := h.Workspaces.Get(c.Request.Context(), user)
	if err != nil {
		h.fail(c, "Failed to load your boards", err)
		return nil, false
	}
	return m, true
}

// fail reports err to the user and writes the matching status.
func (h *base) fail(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.Log.Errorw(message, "path", c.FullPath(), "error", err)
	} else {
		h.Log.Debugw(message, "path", c.FullPath(), "error", err)
	}
	h.Notifier.Error(c.Request.Context(), message)
	c.JSON(status, gin.H{"error": message})
}

func (h *base) ok(c *gin.Context, status int, message string, body gin.H) {
	h.Notifier.Success(c.Request.Context(), message)
	if body == nil {
		body = gin.H{}
	}
	body["message"] = message
	c.JSON(status, body)
}

// boardAfterMove returns the active board to echo after a committed move.
// The move stands even if the active project vanished meanwhile, so the
// caller gets an empty object instead of null.
func (h *base) boardAfterMove(m *board.Manager) interface{} {
	b, err := m.ActiveBoard()
	if err != nil {
		h.Log.Warnw("active board unavailable after move", "user_id", m.User().ID, "error", err)
		return gin.H{}
	}
	return b
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, board.ErrInvalidTitle),
		errors.Is(err, board.ErrInvalidRole),
		errors.Is(err, board.ErrNoActiveProject):
		return http.StatusBadRequest
	case errors.Is(err, board.ErrProjectNotFound),
		errors.Is(err, board.ErrColumnNotFound),
		errors.Is(err, board.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, dnd.ErrBusy):
		return http.StatusConflict
	}

	switch repository.KindOf(err) {
	case repository.KindNotFound:
		return http.StatusNotFound
	case repository.KindPermissionDenied:
		return http.StatusForbidden
	case repository.KindSchemaMissing, repository.KindTransientNetwork:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func paramID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// distinctIDs counts the distinct non-nil ids, the same set the board
// manager acts on.
func distinctIDs(ids []uuid.UUID) int {
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if id != uuid.Nil {
			seen[id] = true
		}
	}
	return len(seen)
}
