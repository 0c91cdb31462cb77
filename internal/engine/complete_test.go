package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"momentum/internal/engine"
)

func TestToggleTaskAwardsPointsAndStreak(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)

	task := createRepeatingTask(t, svc, engine.CreateTaskInput{
		Title:  "Ship release",
		Points: 25,
	})

	res, err := svc.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, 25, res.PointsAwarded)
	assert.Equal(t, 1, res.DailyStreak)
	require.NotNil(t, res.Task.CompletedDate)
	assert.Equal(t, c.Today(), *res.Task.CompletedDate)

	stats := svc.Store().UserStats()
	assert.Equal(t, 25, stats.TotalPoints)
	assert.Equal(t, 25, stats.PointsBreakdown.Tasks)
}

func TestToggleTaskReopenKeepsPointsAndStamp(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)

	task := createRepeatingTask(t, svc, engine.CreateTaskInput{
		Title:  "Ship release",
		Points: 25,
	})

	_, err := svc.ToggleTask(task.ID)
	require.NoError(t, err)
	res, err := svc.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Equal(t, 0, res.PointsAwarded)

	// Points are never clawed back and the stamp survives a reopen.
	got := svc.Store().Task(task.ID)
	require.NotNil(t, got)
	assert.False(t, got.Completed)
	require.NotNil(t, got.CompletedDate)
	assert.Equal(t, c.Today(), *got.CompletedDate)
	assert.Equal(t, 25, svc.Store().UserStats().TotalPoints)
}

func TestToggleTaskLevelUp(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)
	seedCompletedTasks(t, svc.Store(), 29)

	task := createRepeatingTask(t, svc, engine.CreateTaskInput{Title: "thirtieth", Points: 1})
	res, err := svc.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.True(t, res.LevelUp)
	assert.Equal(t, 1, res.LevelBefore)
	assert.Equal(t, 2, res.LevelAfter)
}

func TestToggleTaskNotFound(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)

	_, err := svc.ToggleTask("missing")
	var nf engine.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "task", nf.Kind)
}

func TestCompleteHabit(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)

	habit, err := svc.CreateHabit(engine.CreateHabitInput{
		Name:   "Read",
		Icon:   "📚",
		Points: 5,
	})
	require.NoError(t, err)

	res, err := svc.CompleteHabit(habit.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, res.PointsAwarded)
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, 1, res.CompletedToday)
	assert.Equal(t, 1, res.DailyStreak)
	assert.Equal(t, c.Today(), res.Log.Date)

	// No per-day cap: a second completion logs and scores again, while the
	// daily streak stays at 1.
	res, err = svc.CompleteHabit(habit.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Streak)
	assert.Equal(t, 2, res.CompletedToday)
	assert.Equal(t, 1, res.DailyStreak)

	stats := svc.Store().UserStats()
	assert.Equal(t, 10, stats.TotalPoints)
	assert.Equal(t, 10, stats.PointsBreakdown.Habits)
}

func TestPurchaseReward(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)
	require.NoError(t, svc.AddPoints(100, engine.SourceTasks))

	reward, err := svc.CreateReward(engine.CreateRewardInput{
		Name: "Movie night",
		Cost: 40,
	})
	require.NoError(t, err)
	assert.True(t, reward.Repeatable)

	purchase, err := svc.PurchaseReward(reward.ID)
	require.NoError(t, err)
	assert.Equal(t, reward.ID, purchase.RewardID)
	assert.Equal(t, 40, purchase.Cost)
	assert.Equal(t, 60, svc.Store().UserStats().TotalPoints)
	assert.Len(t, svc.Store().PurchaseHistory(), 1)

	got := svc.Store().Reward(reward.ID)
	require.NotNil(t, got)
	assert.True(t, got.Purchased)

	// Repeatable rewards can be bought again.
	_, err = svc.PurchaseReward(reward.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, svc.Store().UserStats().TotalPoints)
}

func TestPurchaseRewardInsufficientPoints(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)
	require.NoError(t, svc.AddPoints(10, engine.SourceTasks))

	reward, err := svc.CreateReward(engine.CreateRewardInput{Name: "Spa day", Cost: 200})
	require.NoError(t, err)

	_, err = svc.PurchaseReward(reward.ID)
	var pe engine.PurchaseError
	require.ErrorAs(t, err, &pe)

	// A rejected purchase changes nothing.
	assert.Equal(t, 10, svc.Store().UserStats().TotalPoints)
	assert.Empty(t, svc.Store().PurchaseHistory())
}

func TestPurchaseRewardNonRepeatableOnce(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)
	require.NoError(t, svc.AddPoints(100, engine.SourceTasks))

	repeatable := false
	reward, err := svc.CreateReward(engine.CreateRewardInput{
		Name:       "New headphones",
		Cost:       30,
		Repeatable: &repeatable,
	})
	require.NoError(t, err)

	_, err = svc.PurchaseReward(reward.ID)
	require.NoError(t, err)

	_, err = svc.PurchaseReward(reward.ID)
	var pe engine.PurchaseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 70, svc.Store().UserStats().TotalPoints)
	assert.Len(t, svc.Store().PurchaseHistory(), 1)
}

func TestCreateTaskValidation(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)

	_, err := svc.CreateTask(engine.CreateTaskInput{
		Priority:   engine.PriorityMedium,
		RepeatType: engine.RepeatNone,
	})
	assert.Error(t, err, "empty title")

	_, err = svc.CreateTask(engine.CreateTaskInput{
		Title:      "bad date",
		Priority:   engine.PriorityMedium,
		RepeatType: engine.RepeatNone,
		DueDate:    "05/04/2026",
	})
	assert.Error(t, err, "due date must be YYYY-MM-DD")

	_, err = svc.CreateTask(engine.CreateTaskInput{
		Title:      "movable without days",
		Priority:   engine.PriorityMedium,
		RepeatType: engine.RepeatMovable,
	})
	assert.Error(t, err)

	_, err = svc.CreateTask(engine.CreateTaskInput{
		Title:      "custom without days",
		Priority:   engine.PriorityMedium,
		RepeatType: engine.RepeatCustom,
	})
	assert.Error(t, err)

	unknown := "no-such-project"
	_, err = svc.CreateTask(engine.CreateTaskInput{
		Title:      "orphan",
		Priority:   engine.PriorityMedium,
		RepeatType: engine.RepeatNone,
		ProjectID:  &unknown,
	})
	var nf engine.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "project", nf.Kind)
}

func TestAchievements(t *testing.T) {
	c := newClock(2026, time.May, 4)
	svc := newTestService(t, c)

	before := engine.NewAchievementChecker(
		svc.Store().UserStats(), svc.Store().Tasks(), svc.Store().Habits(),
	).CountEarned()
	assert.Equal(t, 0, before)

	task := createRepeatingTask(t, svc, engine.CreateTaskInput{Title: "first", Points: 10})
	_, err := svc.ToggleTask(task.ID)
	require.NoError(t, err)

	earned := 0
	for _, a := range svc.Achievements() {
		if a.Earned {
			earned++
		}
	}
	assert.Greater(t, earned, 0)
}
