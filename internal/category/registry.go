// Package category holds the user-defined category names tasks can be
// filed under.
package category

import (
	"strings"

	"github.com/riordanpawley/grove/internal/domain"
)

// Reserved names used by the "add new category" affordance
var Reserved = []string{"add-new", "+ Add New Category"}

// Registry is an insertion-ordered set of unique category names
type Registry struct {
	names []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{names: make([]string, 0)}
}

// Add validates and appends a name. Empty, reserved and duplicate names are
// rejected with a *domain.ValidationError and leave the registry unchanged.
func (r *Registry) Add(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return &domain.ValidationError{Field: "category", Reason: "name cannot be empty"}
	}
	for _, reserved := range Reserved {
		if name == reserved {
			return &domain.ValidationError{Field: "category", Value: name, Reason: "please choose a different name"}
		}
	}
	if r.Contains(name) {
		return &domain.ValidationError{Field: "category", Value: name, Reason: "already exists"}
	}

	r.names = append(r.names, name)
	return nil
}

// Contains reports an exact, case-sensitive match
func (r *Registry) Contains(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the names in insertion order
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of names
func (r *Registry) Len() int {
	return len(r.names)
}
