package engine

import (
	"time"

	"momentum/internal/storage"
)

// RecurrenceResult summarizes one recurrence pass.
type RecurrenceResult struct {
	Reset   int
	Spawned int
}

// ProcessRecurringTasks scans all tasks and handles repeating ones that are
// currently completed. It runs once per application start and is safe to
// re-run: it only acts on tasks whose completed flag is still true.
//
// Movable repeats completed today spawn a fresh task instance due
// movableRepeatDays from now and reset the original; the original is never
// deleted, so template and spawned instance coexist. Every other repeat kind
// resets in place once the fixed day-count threshold since completion is met.
func (s *Service) ProcessRecurringTasks() (*RecurrenceResult, error) {
	res := &RecurrenceResult{}
	today := s.today()
	now := s.now()

	for _, task := range s.store.Tasks() {
		repeat := RepeatType(task.RepeatType)
		if !task.Completed || repeat == RepeatNone || !repeat.IsValid() {
			continue
		}

		if repeat == RepeatMovable {
			if task.CompletedDate == nil || *task.CompletedDate != today {
				continue
			}
			next := storage.FormatDate(now.AddDate(0, 0, task.MovableRepeatDays))
			spawn := storage.Task{
				Title:             task.Title,
				Description:       task.Description,
				Category:          task.Category,
				Priority:          task.Priority,
				Points:            task.Points,
				ProjectID:         task.ProjectID,
				RepeatType:        task.RepeatType,
				MovableRepeatDays: task.MovableRepeatDays,
				DueDate:           next,
			}
			if _, err := s.store.AddTask(spawn); err != nil {
				return nil, err
			}
			if err := s.resetTask(task.ID); err != nil {
				return nil, err
			}
			res.Spawned++
			res.Reset++
			continue
		}

		days, ok := daysSinceCompletion(task, now)
		if !ok {
			// Unreachable under valid data: completion always stamps the
			// date. A corrupted import is treated as not due.
			continue
		}
		threshold, fixed := repeat.ResetThresholdDays()
		if repeat == RepeatCustom {
			threshold, fixed = task.CustomRepeatDays, task.CustomRepeatDays > 0
		}
		if fixed && days >= threshold {
			if err := s.resetTask(task.ID); err != nil {
				return nil, err
			}
			res.Reset++
		}
	}
	return res, nil
}

func (s *Service) resetTask(id string) error {
	completed := false
	_, err := s.store.UpdateTask(id, storage.TaskPatch{
		Completed:          &completed,
		ClearCompletedDate: true,
	})
	return err
}

func daysSinceCompletion(task storage.Task, now time.Time) (int, bool) {
	if task.CompletedDate == nil {
		return 0, false
	}
	completed, err := time.ParseInLocation(storage.DateLayout, *task.CompletedDate, now.Location())
	if err != nil {
		return 0, false
	}
	days := int(now.Sub(completed).Hours() / 24)
	if days < 0 {
		return 0, false
	}
	return days, true
}
