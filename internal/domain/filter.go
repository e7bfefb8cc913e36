package domain

// DueWindow restricts the active list to tasks due within a horizon
type DueWindow string

const (
	DueAny      DueWindow = ""
	DueIn3Days  DueWindow = "3days"
	DueIn1Week  DueWindow = "1week"
	DueIn1Month DueWindow = "1month"
)

// DueWindows lists the selectable windows in menu order
var DueWindows = []DueWindow{DueIn3Days, DueIn1Week, DueIn1Month}

// Days returns the length of the window in days (0 for DueAny)
func (w DueWindow) Days() int {
	switch w {
	case DueIn3Days:
		return 3
	case DueIn1Week:
		return 7
	case DueIn1Month:
		return 30
	default:
		return 0
	}
}

// Label returns the display string
func (w DueWindow) Label() string {
	switch w {
	case DueIn3Days:
		return "3 days"
	case DueIn1Week:
		return "1 week"
	case DueIn1Month:
		return "1 month"
	default:
		return "any"
	}
}

// Filter represents task filtering state
type Filter struct {
	DueWithin DueWindow
	Category  string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return f != nil && (f.DueWithin != DueAny || f.Category != "")
}

// Apply filters a list of tasks into a fresh slice. today anchors the due
// date window.
func (f *Filter) Apply(tasks []Task, today Date) []Task {
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task, today) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters (AND logic)
func (f *Filter) Matches(t Task, today Date) bool {
	if !f.IsActive() {
		return true
	}

	// Due window: [today, today+N] inclusive; undated tasks never match
	if days := f.DueWithin.Days(); days > 0 {
		if t.DueDate == nil {
			return false
		}
		if t.DueDate.Before(today) || t.DueDate.After(today.AddDays(days)) {
			return false
		}
	}

	// Category is an exact, case-sensitive match
	if f.Category != "" && t.Category != f.Category {
		return false
	}

	return true
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.DueWithin = DueAny
	f.Category = ""
}

// ToggleDueWithin selects a window, or clears it if already selected
func (f *Filter) ToggleDueWithin(w DueWindow) {
	if f.DueWithin == w {
		f.DueWithin = DueAny
	} else {
		f.DueWithin = w
	}
}

// ToggleCategory selects a category, or clears it if already selected
func (f *Filter) ToggleCategory(name string) {
	if f.Category == name {
		f.Category = ""
	} else {
		f.Category = name
	}
}
