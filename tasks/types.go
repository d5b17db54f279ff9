package tasks

import (
	"strings"
	"time"
)

// Priority is the urgency of a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists all valid priority values, most urgent first
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// IsValidPriority checks if a string is a valid priority
func IsValidPriority(s string) bool {
	for _, p := range Priorities {
		if string(p) == s {
			return true
		}
	}
	return false
}

// ParsePriority converts user input to a Priority. Surrounding spaces and
// letter case are ignored.
func ParsePriority(s string) (Priority, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if !IsValidPriority(normalized) {
		return "", validationf("unknown priority %q (want high, medium or low)", s)
	}
	return Priority(normalized), nil
}

// Icon returns the status glyph shown next to the priority in reports
func (p Priority) Icon() string {
	return PriorityIcon(string(p))
}

// PriorityIcon maps a priority name to its glyph; unknown names get a
// neutral marker.
func PriorityIcon(priority string) string {
	switch Priority(priority) {
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	case PriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// Task is a single to-do item
type Task struct {
	ID          int        `json:"id"`
	Text        string     `json:"text"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// AgeDays returns the number of whole days between creation and now.
// A creation time in the future counts as zero days.
func (t Task) AgeDays(now time.Time) int {
	age := now.Sub(t.CreatedAt)
	if age < 0 {
		return 0
	}
	return int(age / (24 * time.Hour))
}

// clone returns a copy that shares no memory with t
func (t *Task) clone() Task {
	c := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return c
}

// setCompleted moves the task to the given state, keeping CompletedAt in
// step with Completed.
func (t *Task) setCompleted(done bool, at time.Time) {
	t.Completed = done
	if done {
		stamp := at
		t.CompletedAt = &stamp
	} else {
		t.CompletedAt = nil
	}
}
