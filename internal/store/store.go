// Package store holds the in-memory collection of every task created in a
// session.
package store

import (
	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/domain"
)

// Store is an append-only collection of tasks keyed by identity. Tasks are
// never removed; deletion is a field on the task.
//
// A Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	tasks   []*domain.Task
	byID    map[uuid.UUID]*domain.Task
	nextSeq uint64
}

// New creates an empty store
func New() *Store {
	return &Store{
		tasks:   make([]*domain.Task, 0),
		byID:    make(map[uuid.UUID]*domain.Task),
		nextSeq: 1,
	}
}

// Add inserts a task and stamps its sequence number. The store takes
// ownership of the pointer.
func (s *Store) Add(task *domain.Task) error {
	if task.ID == uuid.Nil {
		return &domain.ValidationError{Field: "id", Reason: "task has no identity"}
	}
	if _, exists := s.byID[task.ID]; exists {
		return &domain.LookupError{Op: "add", ID: task.ID.String(), Err: domain.ErrDuplicateIdentity}
	}

	task.Seq = s.nextSeq
	s.nextSeq++

	s.tasks = append(s.tasks, task)
	s.byID[task.ID] = task
	return nil
}

// Find returns the live task with the given identity
func (s *Store) Find(id uuid.UUID) (*domain.Task, error) {
	task, ok := s.byID[id]
	if !ok {
		return nil, &domain.LookupError{Op: "find", ID: id.String(), Err: domain.ErrNotFound}
	}
	return task, nil
}

// Len returns the number of tasks ever added
func (s *Store) Len() int {
	return len(s.tasks)
}

// Snapshot returns deep copies of all tasks in insertion order
func (s *Store) Snapshot() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}
