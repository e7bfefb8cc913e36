// Package types contains shared types used across the application.
package types

// Page is the top-level screen being shown
type Page int

const (
	PageTasks Page = iota
	PageArchive
)

// String returns the badge label for the page
func (p Page) String() string {
	switch p {
	case PageTasks:
		return "TASKS"
	case PageArchive:
		return "ARCHIVE"
	default:
		return "UNKNOWN"
	}
}

// Next cycles to the other page
func (p Page) Next() Page {
	if p == PageTasks {
		return PageArchive
	}
	return PageTasks
}
