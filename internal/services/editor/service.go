// Package editor provides page and view state management
package editor

import (
	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/types"
)

// Service manages view state: the page shown, the active list's filter and
// sort, and the completions still waiting out their delay
type Service struct {
	page    types.Page
	filter  *domain.Filter
	sort    *domain.Sort
	pending map[uuid.UUID]bool
}

// NewService creates a new editor service with defaults
func NewService() *Service {
	return &Service{
		page:   types.PageTasks,
		filter: domain.NewFilter(),
		sort: &domain.Sort{
			Field: domain.SortByCreated,
			Order: domain.SortAsc,
		},
		pending: make(map[uuid.UUID]bool),
	}
}

// GetPage returns the current page
func (s *Service) GetPage() types.Page {
	return s.page
}

// NextPage switches to the other page and returns it
func (s *Service) NextPage() types.Page {
	s.page = s.page.Next()
	return s.page
}

// Filter management

// GetFilter returns the current filter for reading. Changes go through the
// toggles below.
func (s *Service) GetFilter() *domain.Filter {
	return s.filter
}

// ToggleDueWithin toggles a due window filter
func (s *Service) ToggleDueWithin(w domain.DueWindow) {
	s.filter.ToggleDueWithin(w)
}

// ClearDueWithin drops the due window filter
func (s *Service) ClearDueWithin() {
	s.filter.DueWithin = domain.DueAny
}

// ToggleCategory toggles the category filter
func (s *Service) ToggleCategory(name string) {
	s.filter.ToggleCategory(name)
}

// ClearFilter drops every filter
func (s *Service) ClearFilter() {
	s.filter.Clear()
}

// IsFilterActive returns true if any filter is active
func (s *Service) IsFilterActive() bool {
	return s.filter.IsActive()
}

// Sort management

// GetSort returns the current sort settings for reading
func (s *Service) GetSort() *domain.Sort {
	return s.sort
}

// ToggleSort toggles the sort field or direction
func (s *Service) ToggleSort(field domain.SortField) {
	s.sort.Toggle(field)
}

// ResetSort returns to creation order
func (s *Service) ResetSort() {
	s.sort.Reset()
}

// ClearView resets both the filter and the sort
func (s *Service) ClearView() {
	s.filter.Clear()
	s.sort.Reset()
}

// Pending completions

// MarkPending records a completion in progress. It returns false when the
// task was already pending.
func (s *Service) MarkPending(id uuid.UUID) bool {
	if s.pending[id] {
		return false
	}
	s.pending[id] = true
	return true
}

// ClearPending forgets a pending completion and reports whether there was one
func (s *Service) ClearPending(id uuid.UUID) bool {
	if !s.pending[id] {
		return false
	}
	delete(s.pending, id)
	return true
}

// IsPending returns true if the task's completion is in progress
func (s *Service) IsPending(id uuid.UUID) bool {
	return s.pending[id]
}

// Pending returns the pending set. Callers must not modify it.
func (s *Service) Pending() map[uuid.UUID]bool {
	return s.pending
}
