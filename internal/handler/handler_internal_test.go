package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/board"
	"taskboard/internal/dnd"
	"taskboard/internal/logger"
	"taskboard/internal/model"
	"taskboard/internal/notify"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid title", board.ErrInvalidTitle, http.StatusBadRequest},
		{"no active project", board.ErrNoActiveProject, http.StatusBadRequest},
		{"task not found", fmt.Errorf("move: %w", board.ErrTaskNotFound), http.StatusNotFound},
		{"busy", dnd.ErrBusy, http.StatusConflict},
		{"store not found", &repository.Error{Kind: repository.KindNotFound}, http.StatusNotFound},
		{"permission denied", &repository.Error{Kind: repository.KindPermissionDenied}, http.StatusForbidden},
		{"schema missing", &repository.Error{Kind: repository.KindSchemaMissing}, http.StatusServiceUnavailable},
		{"transient", fmt.Errorf("x: %w", &repository.Error{Kind: repository.KindTransientNetwork}), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestFailNotifiesAndWritesStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &notify.Recorder{}
	h := base{Deps{Notifier: rec, Log: logger.NewNop()}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.fail(c, "Could not rename the column", board.ErrColumnNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Could not rename the column"}`, w.Body.String())
	assert.Equal(t, []notify.Entry{{Level: "error", Message: "Could not rename the column"}}, rec.Entries())
}

func TestOkEchoesMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := &notify.Recorder{}
	h := base{Deps{Notifier: rec, Log: logger.NewNop()}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)

	h.ok(c, http.StatusOK, "Task deleted", nil)

	assert.JSONEq(t, `{"message":"Task deleted"}`, w.Body.String())
	assert.Equal(t, []notify.Entry{{Level: "success", Message: "Task deleted"}}, rec.Entries())
}

func TestParseIDsRejectsMalformed(t *testing.T) {
	ids, err := parseIDs([]string{"1b4e28ba-2fa1-11d2-883f-0016d3cca427"})
	assert.NoError(t, err)
	assert.Len(t, ids, 1)

	_, err = parseIDs([]string{"not-a-uuid"})
	assert.Error(t, err)
}

func TestDistinctIDs(t *testing.T) {
	// The same id spelled in two cases parses to one uuid.
	raw := []string{
		"1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		"1B4E28BA-2FA1-11D2-883F-0016D3CCA427",
		uuid.Nil.String(),
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	}
	ids, err := parseIDs(raw)
	assert.NoError(t, err)

	assert.Equal(t, 2, distinctIDs(ids))
	assert.Equal(t, 0, distinctIDs(nil))
}

func TestBoardAfterMove_NoActiveProject(t *testing.T) {
	h := base{Deps{Notifier: &notify.Recorder{}, Log: logger.NewNop()}}
	m := board.NewManager(board.Gateway{}, model.User{ID: uuid.New()}, nil, logger.NewNop())

	body := h.boardAfterMove(m)

	assert.Equal(t, gin.H{}, body)
}

func TestBoardAfterMove_ActiveBoard(t *testing.T) {
	h := base{Deps{Notifier: &notify.Recorder{}, Log: logger.NewNop()}}
	projectID := uuid.New()
	b := &board.Board{Project: model.Project{ID: projectID, Name: "P"}, Columns: []board.Column{}}
	m := board.NewManager(board.Gateway{}, model.User{ID: uuid.New()}, []*board.Board{b}, logger.NewNop())

	body := h.boardAfterMove(m)

	active, ok := body.(*board.Board)
	assert.True(t, ok)
	assert.Equal(t, projectID, active.Project.ID)
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name   string
		ping   error
		status int
	}{
		{"healthy", nil, http.StatusOK},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(func(ctx context.Context) error { return tt.ping })
			r := gin.New()
			r.GET("/health", h.Check)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
