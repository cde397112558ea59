package handler

import (
	"net/http"

	"taskboard/internal/dnd"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DragHandler exposes the drag-and-drop engine. A client either drives the
// gesture step by step (start, drop, cancel) or posts a whole drop at once.
type DragHandler struct {
	base
}

func NewDragHandler(deps Deps) *DragHandler {
	return &DragHandler{base{deps}}
}

type DropRequest struct {
	ColumnID string `json:"column_id" binding:"required,uuid"`
}

type TransferDropRequest struct {
	Data     map[string]string `json:"data"`
	ColumnID string            `json:"column_id" binding:"required,uuid"`
}

func (h *DragHandler) engine(c *gin.Context) (*dnd.Engine, bool) {
	m, ok := h.manager(c)
	if !ok {
		return nil, false
	}
	return h.Engines.For(m.User().ID, m), true
}

// @Summary  Start dragging a task
// @Tags     Drag and drop
// @Security BearerAuth
// @Param    request body dnd.Payload true "Dragged task"
// @Router   /drag/start [post]
func (h *DragHandler) Start(c *gin.Context) {
	var p dnd.Payload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	e, ok := h.engine(c)
	if !ok {
		return
	}
	if err := e.Begin(p); err != nil {
		h.fail(c, "Another move is still in progress", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": e.State().String(), "transfer": p.Values()})
}

// @Summary  Drop the dragged task on a column
// @Tags     Drag and drop
// @Security BearerAuth
// @Param    request body DropRequest true "Destination column"
// @Router   /drag/drop [post]
func (h *DragHandler) Drop(c *gin.Context) {
	var req DropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	e, ok := h.engine(c)
	if !ok {
		return
	}
	moved, err := e.Drop(c.Request.Context(), uuid.MustParse(req.ColumnID))
	h.respondDrop(c, moved, err)
}

// @Summary  Cancel the current drag
// @Tags     Drag and drop
// @Security BearerAuth
// @Router   /drag/cancel [post]
func (h *DragHandler) Cancel(c *gin.Context) {
	e, ok := h.engine(c)
	if !ok {
		return
	}
	e.Cancel()
	c.JSON(http.StatusOK, gin.H{"state": e.State().String()})
}

// HandleDrop resolves a drop carrying the transfer data written at drag start.
//
// @Summary  Drop a task using transfer data
// @Tags     Drag and drop
// @Security BearerAuth
// @Param    request body TransferDropRequest true "Transfer data and destination"
// @Router   /drops [post]
func (h *DragHandler) HandleDrop(c *gin.Context) {
	var req TransferDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	e, ok := h.engine(c)
	if !ok {
		return
	}
	moved, err := e.HandleDrop(c.Request.Context(), dnd.ParsePayload(req.Data), uuid.MustParse(req.ColumnID))
	h.respondDrop(c, moved, err)
}

func (h *DragHandler) respondDrop(c *gin.Context, moved bool, err error) {
	if err != nil {
		h.fail(c, "Could not move the task. Please try again.", err)
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"moved": moved, "board": h.boardAfterMove(m)})
}
