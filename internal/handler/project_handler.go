package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	base
}

func NewProjectHandler(deps Deps) *ProjectHandler {
	return &ProjectHandler{base{deps}}
}

type CreateProjectRequest struct {
	Name      string   `json:"name" binding:"required"`
	MemberIDs []string `json:"member_ids"`
}

type UpdateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetAll lists the caller's projects.
//
// @Summary  List projects
// @Tags     Projects
// @Security BearerAuth
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /projects [get]
func (h *ProjectHandler) GetAll(c *gin.Context) {
	m, ok := h.manager(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"projects":          m.Projects(),
		"active_project_id": m.ActiveProjectID(),
	})
}

// Create makes a new project with the default columns and selects it.
//
// @Summary  Create project
// @Tags     Projects
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    request body CreateProjectRequest true "Project"
// @Success  201 {object} board.Board
// @Router   /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	memberIDs, err := parseIDs(req.MemberIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID format"})
		return
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	b, err := m.CreateProject(c.Request.Context(), req.Name, memberIDs)
	if err != nil {
		h.fail(c, "Could not create the project", err)
		return
	}
	h.ok(c, http.StatusCreated, "Project created", gin.H{"board": b})
}

// @Summary  Rename project
// @Tags     Projects
// @Security BearerAuth
// @Param    id path string true "Project ID"
// @Param    request body UpdateProjectRequest true "Project"
// @Router   /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	project, err := m.UpdateProject(c.Request.Context(), id, req.Name)
	if err != nil {
		h.fail(c, "Could not update the project", err)
		return
	}
	h.ok(c, http.StatusOK, "Project updated", gin.H{"project": project})
}

// @Summary  Delete project
// @Tags     Projects
// @Security BearerAuth
// @Param    id path string true "Project ID"
// @Router   /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	if err := m.DeleteProject(c.Request.Context(), id); err != nil {
		h.fail(c, "Could not delete the project", err)
		return
	}
	h.ok(c, http.StatusOK, "Project deleted", gin.H{"active_project_id": m.ActiveProjectID()})
}

// @Summary  Select active project
// @Tags     Projects
// @Security BearerAuth
// @Param    id path string true "Project ID"
// @Router   /projects/{id}/select [post]
func (h *ProjectHandler) Select(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	b, err := m.SelectProject(id)
	if err != nil {
		h.fail(c, "Project not found", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary  Get a project's board
// @Tags     Projects
// @Security BearerAuth
// @Param    id path string true "Project ID"
// @Success  200 {object} board.Board
// @Router   /projects/{id}/board [get]
func (h *ProjectHandler) GetBoard(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	b, err := m.Board(id)
	if err != nil {
		h.fail(c, "Project not found", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary  Get the active board
// @Tags     Projects
// @Security BearerAuth
// @Success  200 {object} board.Board
// @Router   /board [get]
func (h *ProjectHandler) GetActiveBoard(c *gin.Context) {
	m, ok := h.manager(c)
	if !ok {
		return
	}
	b, err := m.ActiveBoard()
	if err != nil {
		h.fail(c, "No project selected", err)
		return
	}
	c.JSON(http.StatusOK, b)
}
