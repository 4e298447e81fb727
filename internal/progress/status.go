package progress

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned when a value is not one of the four statuses.
var ErrInvalidStatus = errors.New("invalid node status")

// NodeStatus is a topic's progress state. The four values are flat
// categories with no ordering between them.
type NodeStatus string

const (
	StatusLocked     NodeStatus = "locked"
	StatusNotStarted NodeStatus = "not-started"
	StatusInProgress NodeStatus = "in-progress"
	StatusCompleted  NodeStatus = "completed"
)

// AllStatuses returns all statuses in display order.
func AllStatuses() []NodeStatus {
	return []NodeStatus{StatusLocked, StatusNotStarted, StatusInProgress, StatusCompleted}
}

// ParseStatus converts user input into a NodeStatus.
// Matching is case-insensitive and accepts underscores or spaces for dashes.
func ParseStatus(s string) (NodeStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	st := NodeStatus(norm)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Valid reports whether s is one of the four statuses.
func (s NodeStatus) Valid() bool {
	switch s {
	case StatusLocked, StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Icon returns the display icon for a status.
func (s NodeStatus) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusNotStarted:
		return "○"
	case StatusInProgress:
		return "◐"
	case StatusCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a status.
func (s NodeStatus) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
