package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MemberHandler struct {
	base
}

func NewMemberHandler(deps Deps) *MemberHandler {
	return &MemberHandler{base{deps}}
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type UpdateMemberRequest struct {
	Role string `json:"role" binding:"required"`
}

// @Summary  List project members
// @Tags     Members
// @Security BearerAuth
// @Param    id path string true "Project ID"
// @Success  200 {array} board.Member
// @Router   /projects/{id}/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	members, err := m.Members(c.Request.Context(), projectID)
	if err != nil {
		h.fail(c, "Could not load the project members", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

// @Summary  Add project member
// @Tags     Members
// @Security BearerAuth
// @Param    id path string true "Project ID"
// @Param    request body AddMemberRequest true "User"
// @Success  201 {object} board.Member
// @Router   /projects/{id}/members [post]
func (h *MemberHandler) Add(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	member, err := m.AddMember(c.Request.Context(), projectID, uuid.MustParse(req.UserID))
	if err != nil {
		h.fail(c, "Could not add the member", err)
		return
	}
	h.ok(c, http.StatusCreated, "Member added", gin.H{"member": member})
}

// @Summary  Change a member's role
// @Tags     Members
// @Security BearerAuth
// @Param    id path string true "Project ID"
// @Param    user_id path string true "User ID"
// @Param    request body UpdateMemberRequest true "Role"
// @Router   /projects/{id}/members/{user_id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	member, err := m.UpdateMemberRole(c.Request.Context(), projectID, userID, req.Role)
	if err != nil {
		h.fail(c, "Could not change the member's role", err)
		return
	}
	h.ok(c, http.StatusOK, "Member updated", gin.H{"member": member})
}

// @Summary  Remove project member
// @Tags     Members
// @Security BearerAuth
// @Param    id path string true "Project ID"
// @Param    user_id path string true "User ID"
// @Router   /projects/{id}/members/{user_id} [delete]
func (h *MemberHandler) Remove(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	if err := m.RemoveMember(c.Request.Context(), projectID, userID); err != nil {
		h.fail(c, "Could not remove the member", err)
		return
	}
	h.ok(c, http.StatusOK, "Member removed", nil)
}
