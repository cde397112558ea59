package handler

import (
	"context"
	"net/http"

	"taskboard/internal/identity"
	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
)

type UserLister interface {
	ListAllUsers(ctx context.Context, current model.User) []model.User
}

type UserHandler struct {
	base
	users UserLister
}

func NewUserHandler(deps Deps, users UserLister) *UserHandler {
	return &UserHandler{base: base{deps}, users: users}
}

// Me returns the caller with the active project id.
//
// @Summary  Current user
// @Tags     Users
// @Security BearerAuth
// @Success  200 {object} map[string]interface{}
// @Router   /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	m, ok := h.manager(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":              m.User(),
		"active_project_id": m.ActiveProjectID(),
	})
}

// List returns every user that can be assigned to tasks.
//
// @Summary  List users
// @Tags     Users
// @Security BearerAuth
// @Success  200 {array} model.User
// @Router   /users [get]
func (h *UserHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.users.ListAllUsers(c.Request.Context(), user))
}

// SignOut drops the caller's cached boards so the next request reloads them.
//
// @Summary  End session
// @Tags     Users
// @Security BearerAuth
// @Router   /session [delete]
func (h *UserHandler) SignOut(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	h.Workspaces.Evict(user.ID)
	h.Engines.Evict(user.ID)
	c.Status(http.StatusNoContent)
}

var _ UserLister = (*identity.Resolver)(nil)
