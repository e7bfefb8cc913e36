package domain

import (
	"slices"
	"sort"
)

// SortField represents a field to sort by
type SortField string

const (
	SortByCreated  SortField = ""
	SortByPriority SortField = "priority"
	SortByDueDate  SortField = "dueDate"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

func (o SortOrder) String() string {
	if o == SortDesc {
		return "desc"
	}
	return "asc"
}

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction
// If field is different, sets new field with ascending order
// If field is same, toggles between ascending and descending
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Reset returns to creation order
func (s *Sort) Reset() {
	s.Field = SortByCreated
	s.Order = SortAsc
}

// Apply sorts a copy of tasks. The ascending order is stable over the input,
// so callers pass tasks in creation order; descending is its exact reverse.
func (s *Sort) Apply(tasks []Task) []Task {
	result := make([]Task, len(tasks))
	copy(result, tasks)

	if s == nil || len(result) == 0 {
		return result
	}

	switch s.Field {
	case SortByPriority:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Priority < result[j].Priority
		})
		if s.Order == SortDesc {
			slices.Reverse(result)
		}

	case SortByDueDate:
		// Undated tasks always go last; direction only applies to dated ones
		dated := make([]Task, 0, len(result))
		undated := make([]Task, 0)
		for _, t := range result {
			if t.DueDate == nil {
				undated = append(undated, t)
			} else {
				dated = append(dated, t)
			}
		}
		sort.SliceStable(dated, func(i, j int) bool {
			return dated[i].DueDate.Before(*dated[j].DueDate)
		})
		if s.Order == SortDesc {
			slices.Reverse(dated)
		}
		result = append(dated, undated...)
	}

	return result
}

// ByCreation sorts a copy of tasks by creation time, breaking ties by
// sequence number.
func ByCreation(tasks []Task) []Task {
	result := make([]Task, len(tasks))
	copy(result, tasks)
	sort.SliceStable(result, func(i, j int) bool {
		if c := result[i].CreatedAt.Compare(result[j].CreatedAt); c != 0 {
			return c < 0
		}
		return result[i].Seq < result[j].Seq
	})
	return result
}
