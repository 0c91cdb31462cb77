package engine

import (
	"fmt"

	"momentum/internal/storage"
)

// Achievement represents a badge derived from the current document state.
// Badges are never persisted; they are recomputed on demand.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which badges have been earned.
type AchievementChecker struct {
	stats  storage.UserStats
	tasks  []storage.Task
	habits []storage.Habit
}

func NewAchievementChecker(stats storage.UserStats, tasks []storage.Task, habits []storage.Habit) *AchievementChecker {
	return &AchievementChecker{stats: stats, tasks: tasks, habits: habits}
}

// Achievements returns all badges with their earned status.
func (c *AchievementChecker) Achievements() []Achievement {
	return []Achievement{
		c.levelAchievement("getting_started", "Getting Started", "🌱", 2),
		c.levelAchievement("regular", "Regular", "🌿", 5),
		c.levelAchievement("veteran", "Veteran", "🌳", 10),

		c.taskCountAchievement("first_task", "First Win", "✓", 1),
		c.taskCountAchievement("productive", "Productive", "📋", 10),
		c.taskCountAchievement("achiever", "Achiever", "🏅", 50),
		c.taskCountAchievement("powerhouse", "Powerhouse", "🏆", 100),

		c.streakAchievement("warming_up", "Warming Up", "🔥", 3),
		c.streakAchievement("on_a_roll", "On a Roll", "🔥", 7),
		c.streakAchievement("unstoppable", "Unstoppable", "🔥", 30),

		c.pointsAchievement("collector", "Collector", "⭐", 100),
		c.pointsAchievement("hoarder", "Hoarder", "🌟", 1000),

		c.habitAchievement("habit_former", "Habit Former", "🔁"),
	}
}

// CountEarned returns how many badges have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.Achievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

func (c *AchievementChecker) levelAchievement(id, name, icon string, level int) Achievement {
	return Achievement{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("Reach level %d", level),
		Icon:        icon,
		Earned:      c.stats.Level >= level,
	}
}

func (c *AchievementChecker) taskCountAchievement(id, name, icon string, count int) Achievement {
	completed := 0
	for i := range c.tasks {
		if c.tasks[i].Completed {
			completed++
		}
	}
	return Achievement{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("Complete %d tasks", count),
		Icon:        icon,
		Earned:      completed >= count,
	}
}

func (c *AchievementChecker) streakAchievement(id, name, icon string, days int) Achievement {
	return Achievement{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("Keep a %d-day streak", days),
		Icon:        icon,
		Earned:      c.stats.DailyStreak >= days,
	}
}

func (c *AchievementChecker) pointsAchievement(id, name, icon string, points int) Achievement {
	return Achievement{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("Earn %d points", points),
		Icon:        icon,
		Earned:      c.stats.TotalPoints >= points,
	}
}

func (c *AchievementChecker) habitAchievement(id, name, icon string) Achievement {
	return Achievement{
		ID:          id,
		Name:        name,
		Description: "Create a habit",
		Icon:        icon,
		Earned:      len(c.habits) > 0,
	}
}

// Achievements is the service-level convenience wrapper over the checker.
func (s *Service) Achievements() []Achievement {
	checker := NewAchievementChecker(s.store.UserStats(), s.store.Tasks(), s.store.Habits())
	return checker.Achievements()
}
