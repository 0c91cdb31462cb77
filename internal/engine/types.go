package engine

import "strings"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// DefaultPriority is used when user input is missing/invalid.
const DefaultPriority Priority = PriorityMedium

// ParsePriority parses user input to a Priority, falling back to the default.
func ParsePriority(input string) Priority {
	p := Priority(strings.TrimSpace(strings.ToLower(input)))
	if p.IsValid() {
		return p
	}
	return DefaultPriority
}

type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
	RepeatCustom  RepeatType = "custom"
	RepeatMovable RepeatType = "movable"
)

func (r RepeatType) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly, RepeatCustom, RepeatMovable:
		return true
	default:
		return false
	}
}

// ResetThresholdDays returns the fixed day-count threshold after which a
// completed task of this repeat kind resets, and ok=false for kinds without
// a fixed one (none, movable, custom). Months and years are fixed 30/365-day
// spans on purpose; this is not calendar arithmetic.
func (r RepeatType) ResetThresholdDays() (int, bool) {
	switch r {
	case RepeatDaily:
		return 1, true
	case RepeatWeekly:
		return 7, true
	case RepeatMonthly:
		return 30, true
	case RepeatYearly:
		return 365, true
	default:
		return 0, false
	}
}

// PointSource names a breakdown bucket for awarded points.
type PointSource string

const (
	SourceTasks       PointSource = "tasks"
	SourceProjects    PointSource = "projects"
	SourceHabits      PointSource = "habits"
	SourceStreakBonus PointSource = "streakBonus"
)

func (s PointSource) IsValid() bool {
	switch s {
	case SourceTasks, SourceProjects, SourceHabits, SourceStreakBonus:
		return true
	default:
		return false
	}
}
