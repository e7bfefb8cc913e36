package session

import (
	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/reward"
)

// Event is emitted to listeners after a command succeeds
type Event interface {
	event()
}

// Op names the command that changed the task list
type Op string

const (
	OpAdd        Op = "add"
	OpEdit       Op = "edit"
	OpAddSubtask Op = "add_subtask"
	OpSubtask    Op = "toggle_subtask"
	OpComplete   Op = "complete"
	OpUncomplete Op = "uncomplete"
	OpDelete     Op = "delete"
	OpUndelete   Op = "undelete"
	OpCategory   Op = "add_category"
)

// TaskListChanged tells renderers to recompute their views
type TaskListChanged struct {
	Op     Op
	TaskID uuid.UUID // uuid.Nil for registry-only changes
}

// StageGrown is the reward milestone event
type StageGrown reward.StageGrown

func (TaskListChanged) event() {}
func (StageGrown) event()      {}

// Listener observes session events. Listeners run synchronously after the
// state change and cannot veto it.
type Listener func(Event)
