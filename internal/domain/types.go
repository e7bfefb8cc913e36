// Package domain contains core business types for the grove task tracker.
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Priority represents task priority
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// Priorities lists every priority in ascending order
var Priorities = []Priority{PriorityNone, PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) String() string {
	if p < PriorityNone || p > PriorityHigh {
		return "none"
	}
	return [...]string{"none", "low", "medium", "high"}[p]
}

// Short returns a single character badge for the priority
func (p Priority) Short() string {
	switch p {
	case PriorityLow:
		return "L"
	case PriorityMedium:
		return "M"
	case PriorityHigh:
		return "H"
	default:
		return "-"
	}
}

// ParsePriority coerces a name ("high") or numeric value ("3") into a
// Priority. Anything that doesn't match falls back to PriorityNone.
func ParsePriority(s string) Priority {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= int(PriorityNone) && n <= int(PriorityHigh) {
			return Priority(n)
		}
		return PriorityNone
	}
	for _, p := range Priorities {
		if p.String() == s {
			return p
		}
	}
	return PriorityNone
}

// Bucket is the display bucket a task falls into
type Bucket int

const (
	BucketActive Bucket = iota
	BucketCompleted
	BucketDeleted
)

func (b Bucket) String() string {
	return [...]string{"active", "completed", "deleted"}[b]
}

// DateLayout is the wire and display layout for calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a normalized Date (Feb 30 becomes Mar 1 or 2)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1
func (d Date) Compare(o Date) int {
	return d.Time().Compare(o.Time())
}

// Before reports whether d is strictly earlier than o
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is strictly later than o
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}
