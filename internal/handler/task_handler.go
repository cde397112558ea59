package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	base
}

func NewTaskHandler(deps Deps) *TaskHandler {
	return &TaskHandler{base{deps}}
}

type CreateTaskRequest struct {
	ColumnID    string   `json:"column_id" binding:"required,uuid"`
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	AssigneeIDs []string `json:"assignee_ids"`
}

type UpdateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	AssigneeIDs []string `json:"assignee_ids"`
}

type MoveTaskRequest struct {
	FromColumnID string `json:"from_column_id" binding:"required,uuid"`
	ToColumnID   string `json:"to_column_id" binding:"required,uuid"`
	Position     *int   `json:"position" binding:"required"`
}

type AssignRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// Create adds a task at the end of a column and assigns the selected users.
//
// @Summary  Create task
// @Tags     Tasks
// @Security BearerAuth
// @Param    request body CreateTaskRequest true "Task"
// @Success  201 {object} board.Task
// @Router   /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	assignees, err := parseIDs(req.AssigneeIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
		return
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	task, err := m.CreateTask(c.Request.Context(), uuid.MustParse(req.ColumnID), req.Title, req.Description, assignees)
	if err != nil {
		h.fail(c, "Could not create the task", err)
		return
	}

	body := gin.H{"task": task}
	if len(task.AssignedUsers) < distinctIDs(assignees) {
		body["warning"] = "Some users could not be assigned"
	}
	h.ok(c, http.StatusCreated, "Task created", body)
}

// Update saves title and description and replaces the assignee set.
//
// @Summary  Update task
// @Tags     Tasks
// @Security BearerAuth
// @Param    id path string true "Task ID"
// @Param    request body UpdateTaskRequest true "Task"
// @Router   /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	assignees, err := parseIDs(req.AssigneeIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
		return
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	task, err := m.UpdateTask(c.Request.Context(), id, req.Title, req.Description, assignees)
	if err != nil {
		h.fail(c, "Could not update the task", err)
		return
	}
	h.ok(c, http.StatusOK, "Task updated", gin.H{"task": task})
}

// @Summary  Delete task
// @Tags     Tasks
// @Security BearerAuth
// @Param    id path string true "Task ID"
// @Param    column_id query string false "Column holding the task"
// @Router   /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	columnID := uuid.Nil
	if raw := c.Query("column_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
			return
		}
		columnID = parsed
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	if err := m.DeleteTask(c.Request.Context(), id, columnID); err != nil {
		h.fail(c, "Could not delete the task", err)
		return
	}
	h.ok(c, http.StatusOK, "Task deleted", nil)
}

// Move places a task at a position of a column.
//
// @Summary  Move task
// @Tags     Tasks
// @Security BearerAuth
// @Param    id path string true "Task ID"
// @Param    request body MoveTaskRequest true "Destination"
// @Success  200 {object} board.Board
// @Router   /tasks/{id}/move [post]
func (h *TaskHandler) Move(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	err := m.MoveTask(c.Request.Context(), id, uuid.MustParse(req.FromColumnID), uuid.MustParse(req.ToColumnID), *req.Position)
	if err != nil {
		h.fail(c, "Could not move the task", err)
		return
	}
	c.JSON(http.StatusOK, h.boardAfterMove(m))
}

// @Summary  Assign user to task
// @Tags     Tasks
// @Security BearerAuth
// @Param    id path string true "Task ID"
// @Param    request body AssignRequest true "User"
// @Router   /tasks/{id}/assign [post]
func (h *TaskHandler) Assign(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	m, ok := h.manager(c)
	if !ok {
		return
	}
	task, err := m.AssignUser(c.Request.Context(), id, uuid.MustParse(req.UserID))
	if err != nil {
		h.fail(c, "Could not assign the user", err)
		return
	}
	h.ok(c, http.StatusOK, "User assigned", gin.H{"task": task})
}

// @Summary  Unassign user from task
// @Tags     Tasks
// @Security BearerAuth
// @Param    id path string true "Task ID"
// @Param    user_id path string true "User ID"
// @Router   /tasks/{id}/assign/{user_id} [delete]
func (h *TaskHandler) Unassign(c *gin.Context) {
	id, ok := paramID(c, "id")
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
	task, err := m.UnassignUser(c.Request.Context(), id, userID)
	if err != nil {
		h.fail(c, "Could not unassign the user", err)
		return
	}
	h.ok(c, http.StatusOK, "User unassigned", gin.H{"task": task})
}

