package engine

import (
	"momentum/internal/storage"
)

// ToggleResult describes what a task toggle did.
type ToggleResult struct {
	Task          storage.Task
	Completed     bool
	PointsAwarded int
	LevelBefore   int
	LevelAfter    int
	LevelUp       bool
	DailyStreak   int
}

// ToggleTask flips a task's completed flag. Completing stamps completedDate,
// awards the task's points, and counts toward the daily streak. Un-completing
// flips the flag back and nothing else: points stay awarded and the stamp is
// only cleared by a recurrence reset.
func (s *Service) ToggleTask(id string) (*ToggleResult, error) {
	task := s.store.Task(id)
	if task == nil {
		return nil, NotFoundError{Kind: "task", ID: id}
	}

	levelBefore := s.store.UserStats().Level
	completed := !task.Completed
	patch := storage.TaskPatch{Completed: &completed}
	if completed {
		today := s.today()
		patch.CompletedDate = &today
	}
	updated, err := s.store.UpdateTask(id, patch)
	if err != nil {
		return nil, err
	}

	res := &ToggleResult{Task: *updated, Completed: completed, LevelBefore: levelBefore}
	if completed {
		if err := s.AddPoints(task.Points, SourceTasks); err != nil {
			return nil, err
		}
		if err := s.UpdateDailyStreak(true); err != nil {
			return nil, err
		}
		res.PointsAwarded = task.Points
	} else {
		// A manual un-complete still leaves the level derived from the new
		// completed count.
		if err := s.UpdateLevel(); err != nil {
			return nil, err
		}
	}

	stats := s.store.UserStats()
	res.LevelAfter = stats.Level
	res.LevelUp = stats.Level > levelBefore
	res.DailyStreak = stats.DailyStreak
	return res, nil
}

// HabitResult describes one habit completion.
type HabitResult struct {
	Habit          storage.Habit
	Log            storage.HabitLog
	PointsAwarded  int
	Streak         int
	CompletedToday int
	DailyStreak    int
}

// CompleteHabit logs a completion for today, bumps the habit streak, awards
// the habit's points, and counts toward the daily streak. There is no per-day
// cap: completing twice appends two logs.
func (s *Service) CompleteHabit(id string) (*HabitResult, error) {
	habit := s.store.Habit(id)
	if habit == nil {
		return nil, NotFoundError{Kind: "habit", ID: id}
	}

	log, err := s.store.LogHabitCompletion(id, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.AddPoints(habit.Points, SourceHabits); err != nil {
		return nil, err
	}
	if err := s.UpdateDailyStreak(true); err != nil {
		return nil, err
	}

	updated := s.store.Habit(id)
	if updated == nil {
		return nil, NotFoundError{Kind: "habit", ID: id}
	}
	return &HabitResult{
		Habit:          *updated,
		Log:            log,
		PointsAwarded:  habit.Points,
		Streak:         updated.Streak,
		CompletedToday: s.store.CountHabitCompletionsToday(id),
		DailyStreak:    s.store.UserStats().DailyStreak,
	}, nil
}
