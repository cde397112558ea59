package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	base
}

func NewColumnHandler(deps Deps) *ColumnHandler {
	return &ColumnHandler{base{deps}}
}

type ColumnRequest struct {
	Title string `json:"title" binding:"required"`
}

type MoveColumnRequest struct {
	Position *int `json:"position" binding:"required"`
}

// Create appends a column to the active project.
//
// @Summary  Create column
// @Tags     Columns
// @Security BearerAuth
// @Param    request body ColumnRequest true "Column"
// @Success  201 {object} board.Column
// @Router   /columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	col, err := m.CreateColumn(c.Request.Context(), req.Title)
	if err != nil {
		h.fail(c, "Could not create the column", err)
		return
	}
	h.ok(c, http.StatusCreated, "Column created", gin.H{"column": col})
}

// @Summary  Rename column
// @Tags     Columns
// @Security BearerAuth
// @Param    id path string true "Column ID"
// @Param    request body ColumnRequest true "Column"
// @Router   /columns/{id} [put]
func (h *ColumnHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	col, err := m.RenameColumn(c.Request.Context(), id, req.Title)
	if err != nil {
		h.fail(c, "Could not rename the column", err)
		return
	}
	h.ok(c, http.StatusOK, "Column updated", gin.H{"column": col})
}

// Delete removes the column together with its tasks.
//
// @Summary  Delete column
// @Tags     Columns
// @Security BearerAuth
// @Param    id path string true "Column ID"
// @Router   /columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	if err := m.DeleteColumn(c.Request.Context(), id); err != nil {
		h.fail(c, "Could not delete the column", err)
		return
	}
	h.ok(c, http.StatusOK, "Column deleted", nil)
}

// @Summary  Move column
// @Tags     Columns
// @Security BearerAuth
// @Param    id path string true "Column ID"
// @Param    request body MoveColumnRequest true "Target position"
// @Router   /columns/{id}/move [post]
func (h *ColumnHandler) Move(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req MoveColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	if err := m.MoveColumn(c.Request.Context(), id, *req.Position); err != nil {
		h.fail(c, "Could not move the column", err)
		return
	}
	c.JSON(http.StatusOK, h.boardAfterMove(m))
}
