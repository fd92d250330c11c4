package tasks

import "strings"

// Status is the progress state of an item. The integer values are the wire
// codes and the sort ordinal.
type Status int

const (
	StatusNotStarted Status = 0
	StatusInProgress Status = 1
	StatusDone       Status = 2
)

// Priority is the urgency of an item. The integer values are the wire
// codes and the sort ordinal.
type Priority int

const (
	PriorityLow    Priority = 0
	PriorityMedium Priority = 1
	PriorityHigh   Priority = 2
)

// Statuses lists every status in ordinal order
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusDone}

// Priorities lists every priority in ordinal order
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether s is a defined status
func (s Status) Valid() bool {
	return s >= StatusNotStarted && s <= StatusDone
}

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusInProgress:
		return "InProgress"
	case StatusDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is a defined priority
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// StatusFromCode maps an integer code to a Status.
// Unrecognized codes default to StatusNotStarted.
func StatusFromCode(code int) Status {
	s := Status(code)
	if !s.Valid() {
		return StatusNotStarted
	}
	return s
}

// PriorityFromCode maps an integer code to a Priority.
// Unrecognized codes default to PriorityLow.
func PriorityFromCode(code int) Priority {
	p := Priority(code)
	if !p.Valid() {
		return PriorityLow
	}
	return p
}

// ParseStatus parses a status name case-insensitively ("done", "in_progress", "InProgress").
func ParseStatus(name string) (Status, bool) {
	switch normalizeName(name) {
	case "notstarted":
		return StatusNotStarted, true
	case "inprogress":
		return StatusInProgress, true
	case "done":
		return StatusDone, true
	}
	return StatusNotStarted, false
}

// ParsePriority parses a priority name case-insensitively.
func ParsePriority(name string) (Priority, bool) {
	switch normalizeName(name) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	}
	return PriorityLow, false
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
}
