package dnd

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"taskboard/internal/logger"

	"github.com/google/uuid"
)

// Transfer keys written on drag start and read back on drop.
const (
	KeyTaskID         = "taskId"
	KeySourceColumnID = "sourceColumnId"
	KeySourceIndex    = "sourceIndex"
)

type State int

const (
	Idle State = iota
	Dragging
	Resolving
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Resolving:
		return "resolving"
	default:
		return "idle"
	}
}

var ErrBusy = errors.New("a drop is still being resolved")

// Payload identifies the dragged task and where it came from.
type Payload struct {
	TaskID         uuid.UUID `json:"task_id"`
	SourceColumnID uuid.UUID `json:"source_column_id"`
	SourceIndex    int       `json:"source_index"`
}

func (p Payload) valid() bool {
	return p.TaskID != uuid.Nil && p.SourceColumnID != uuid.Nil
}

// Values encodes the payload under the transfer keys.
func (p Payload) Values() map[string]string {
	return map[string]string{
		KeyTaskID:         p.TaskID.String(),
		KeySourceColumnID: p.SourceColumnID.String(),
		KeySourceIndex:    strconv.Itoa(p.SourceIndex),
	}
}

// ParsePayload reads transfer values. Missing or malformed ids become
// uuid.Nil and a malformed index becomes -1; Drop treats a payload without
// ids as a no-op.
func ParsePayload(values map[string]string) Payload {
	p := Payload{SourceIndex: -1}
	if id, err := uuid.Parse(values[KeyTaskID]); err == nil {
		p.TaskID = id
	}
	if id, err := uuid.Parse(values[KeySourceColumnID]); err == nil {
		p.SourceColumnID = id
	}
	if i, err := strconv.Atoi(values[KeySourceIndex]); err == nil {
		p.SourceIndex = i
	}
	return p
}

// Board is the part of the board manager the engine drives.
type Board interface {
	MoveTask(ctx context.Context, taskID, fromColumnID, toColumnID uuid.UUID, destinationIndex int) error
	ColumnTaskCount(columnID uuid.UUID) (int, bool)
}

// Engine turns a drag gesture into a task move. Drops always append to the
// destination column.
type Engine struct {
	board Board
	log   *logger.Logger

	mu      sync.Mutex
	state   State
	payload Payload
}

func NewEngine(board Board, log *logger.Logger) *Engine {
	return &Engine{board: board, log: log}
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Begin records the dragged task. Starting a new drag replaces any payload
// that was never dropped.
func (e *Engine) Begin(p Payload) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Resolving {
		return ErrBusy
	}
	e.payload = p
	e.state = Dragging
	return nil
}

// Cancel drops the payload, as when the task is released outside any column.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Dragging {
		e.reset()
	}
}

// Drop moves the dragged task to the end of destinationColumnID. It reports
// whether a move was attempted; an invalid payload or unknown destination
// returns false and leaves the board alone.
func (e *Engine) Drop(ctx context.Context, destinationColumnID uuid.UUID) (bool, error) {
	e.mu.Lock()
	if e.state != Dragging {
		busy := e.state == Resolving
		e.mu.Unlock()
		if busy {
			return false, ErrBusy
		}
		return false, nil
	}

	p := e.payload
	if !p.valid() {
		e.reset()
		e.mu.Unlock()
		e.log.Debugw("drop ignored, payload incomplete", "task_id", p.TaskID, "source_column_id", p.SourceColumnID)
		return false, nil
	}

	count, ok := e.board.ColumnTaskCount(destinationColumnID)
	if !ok {
		e.reset()
		e.mu.Unlock()
		e.log.Debugw("drop ignored, unknown destination", "column_id", destinationColumnID)
		return false, nil
	}

	e.state = Resolving
	e.mu.Unlock()

	err := e.board.MoveTask(ctx, p.TaskID, p.SourceColumnID, destinationColumnID, count)

	e.mu.Lock()
	e.reset()
	e.mu.Unlock()

	if err != nil {
		e.log.Warnw("failed to move task", "task_id", p.TaskID, "to_column_id", destinationColumnID, "error", err)
		return true, err
	}
	return true, nil
}

// HandleDrop runs a whole gesture at once, for clients that send the
// transfer payload with the drop.
func (e *Engine) HandleDrop(ctx context.Context, p Payload, destinationColumnID uuid.UUID) (bool, error) {
	if err := e.Begin(p); err != nil {
		return false, err
	}
	return e.Drop(ctx, destinationColumnID)
}

func (e *Engine) reset() {
	e.state = Idle
	e.payload = Payload{}
}
