package engine

import "momentum/internal/storage"

// AddPoints adds amount to the running total and, for recognized sources, to
// that source's breakdown bucket. Unrecognized sources update the total only;
// that passthrough is intentional, not an error. The level is recomputed
// eagerly on every award.
func (s *Service) AddPoints(amount int, source PointSource) error {
	return s.store.Mutate(func(d *storage.Document) {
		d.UserStats.TotalPoints += amount
		switch source {
		case SourceTasks:
			d.UserStats.PointsBreakdown.Tasks += amount
		case SourceProjects:
			d.UserStats.PointsBreakdown.Projects += amount
		case SourceHabits:
			d.UserStats.PointsBreakdown.Habits += amount
		case SourceStreakBonus:
			d.UserStats.PointsBreakdown.StreakBonus += amount
		}
		d.UserStats.Level = levelFor(d)
	})
}

// UpdateLevel recomputes the derived level from the completed-task count. It
// is called after every award and settings change, so the stored level is
// never stale.
func (s *Service) UpdateLevel() error {
	return s.store.Mutate(func(d *storage.Document) {
		d.UserStats.Level = levelFor(d)
	})
}

func levelFor(d *storage.Document) int {
	perLevel := d.Settings.TasksPerLevel
	if perLevel <= 0 {
		// Corrupt imports can carry zero; never divide by it.
		perLevel = storage.DefaultTasksPerLevel
	}
	completed := 0
	for i := range d.Tasks {
		if d.Tasks[i].Completed {
			completed++
		}
	}
	return completed/perLevel + 1
}

// UpdateDailyStreak records one qualifying action for today. The streak math
// depends only on the gap between today and lastActivityDate: a one-day gap
// extends the streak, anything larger restarts it at 1. Repeat calls on the
// same day leave the streak untouched but still re-stamp lastActivityDate.
func (s *Service) UpdateDailyStreak(increment bool) error {
	today := s.today()
	yesterday := s.yesterday()
	return s.store.Mutate(func(d *storage.Document) {
		if increment {
			last := d.UserStats.LastActivityDate
			if last == nil || *last != today {
				if last != nil && *last == yesterday {
					d.UserStats.DailyStreak++
				} else {
					d.UserStats.DailyStreak = 1
				}
			}
		}
		d.UserStats.LastActivityDate = &today
	})
}

// UpdateSettings merges the settings patch and recomputes the level under the
// new tasksPerLevel.
func (s *Service) UpdateSettings(p storage.SettingsPatch) (storage.Settings, error) {
	var out storage.Settings
	err := s.store.Mutate(func(d *storage.Document) {
		if p.TasksPerLevel != nil {
			d.Settings.TasksPerLevel = *p.TasksPerLevel
		}
		d.UserStats.Level = levelFor(d)
		out = d.Settings
	})
	return out, err
}
