package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidGroup    = errors.New("model: invalid task group")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

// Group is the recurrence bucket a task belongs to. Daily tasks reset
// every game day, weekly tasks every ISO game week.
type Group string

const (
	GroupDaily  Group = "daily"
	GroupWeekly Group = "weekly"
)

func (g Group) IsValid() bool {
	switch g {
	case GroupDaily, GroupWeekly:
		return true
	default:
		return false
	}
}

// Task is a static chore definition from the catalog. Definitions are
// immutable for the session; completion state lives in the
// period-scoped completion store, never on the task itself.
type Task struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Group    Group    `json:"group"`
	Priority int      `json:"priority"`
	Tags     []string `json:"tags,omitempty"`
	Links    []string `json:"links,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Group.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidGroup, t.Group)
	}
	if t.Priority < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, t.Priority)
	}
	return nil
}

// SortTasks orders tasks by ascending priority, then id for a stable
// tie-break. Lower priority values are shown first.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority < tasks[j].Priority
		}
		return tasks[i].ID < tasks[j].ID
	})
}
