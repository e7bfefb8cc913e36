// Package session owns the application state of one grove run and exposes
// the commands that move tasks between active, completed and deleted.
//
// A Session is driven by a single logical actor (the TUI update loop) and is
// not safe for concurrent use.
package session

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/category"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/reward"
	"github.com/riordanpawley/grove/internal/store"
)

// maxIDAttempts bounds identity regeneration on a store collision
const maxIDAttempts = 4

// Options configures a Session. Zero values get defaults.
type Options struct {
	TasksPerStage int
	Clock         Clock
	Logger        *slog.Logger
	NewID         func() uuid.UUID
}

// Session is the explicit application state: the task store, category
// registry and reward counter, plus the identity of the task open for
// editing.
type Session struct {
	store      *store.Store
	categories *category.Registry
	rewards    *reward.Counter
	clock      Clock
	logger     *slog.Logger
	newID      func() uuid.UUID
	listeners  []Listener

	editing uuid.UUID
}

// New creates an empty session
func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = NewMonotonicClock(nil)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.NewID == nil {
		opts.NewID = uuid.New
	}

	return &Session{
		store:      store.New(),
		categories: category.NewRegistry(),
		rewards:    reward.NewCounter(opts.TasksPerStage),
		clock:      opts.Clock,
		logger:     opts.Logger,
		newID:      opts.NewID,
	}
}

// Subscribe registers a listener for all future events
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(ev Event) {
	for _, l := range s.listeners {
		l(ev)
	}
}

func (s *Session) changed(op Op, id uuid.UUID) {
	s.emit(TaskListChanged{Op: op, TaskID: id})
}

// Today is the calendar date used to anchor due-date filters
func (s *Session) Today() domain.Date {
	return domain.DateOf(s.clock.Now())
}

// RewardState is a read-only view of the reward counter
type RewardState struct {
	Stage     int
	Remaining int
	PerStage  int
	Used      int
	Scale     float64
}

// Rewards returns the current reward state
func (s *Session) Rewards() RewardState {
	return RewardState{
		Stage:     s.rewards.Stage(),
		Remaining: s.rewards.Remaining(),
		PerStage:  s.rewards.PerStage(),
		Used:      s.rewards.Used(),
		Scale:     s.rewards.Scale(),
	}
}

// Categories returns the registered category names in insertion order
func (s *Session) Categories() []string {
	return s.categories.Names()
}

// Task returns a copy of the task with the given identity
func (s *Session) Task(id uuid.UUID) (domain.Task, error) {
	t, err := s.store.Find(id)
	if err != nil {
		return domain.Task{}, err
	}
	return t.Clone(), nil
}

// Len returns the number of tasks ever created, archived ones included
func (s *Session) Len() int {
	return s.store.Len()
}

// SelectActive returns the active list with the given filter and sort
func (s *Session) SelectActive(f *domain.Filter, sort *domain.Sort) []domain.Task {
	return domain.SelectActive(s.store.Snapshot(), f, sort, s.Today())
}

// SelectArchiveCompleted returns completed tasks that are not deleted
func (s *Session) SelectArchiveCompleted() []domain.Task {
	return domain.SelectArchiveCompleted(s.store.Snapshot())
}

// SelectArchiveDeleted returns all deleted tasks
func (s *Session) SelectArchiveDeleted() []domain.Task {
	return domain.SelectArchiveDeleted(s.store.Snapshot())
}
