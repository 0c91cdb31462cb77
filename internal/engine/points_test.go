package engine_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"momentum/internal/engine"
	"momentum/internal/storage"
)

// clock is a mutable test clock shared by the store and the engine, so date
// math in both layers moves together.
type clock struct {
	t time.Time
}

func newClock(year int, month time.Month, day int) *clock {
	return &clock{t: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time    { return c.t }
func (c *clock) AdvanceDays(n int) { c.t = c.t.AddDate(0, 0, n) }
func (c *clock) Today() string     { return storage.FormatDate(c.t) }
func (c *clock) DayOffset(n int) string {
	return storage.FormatDate(c.t.AddDate(0, 0, n))
}

func newTestService(t *testing.T, c *clock) *engine.Service {
	t.Helper()
	backend := storage.NewFileBackend(filepath.Join(t.TempDir(), "data.json"))
	st, err := storage.New(backend, storage.WithNow(c.Now))
	require.NoError(t, err)
	return engine.NewService(st)
}

func seedCompletedTasks(t *testing.T, st *storage.Store, n int) {
	t.Helper()
	today := st.Today()
	require.NoError(t, st.Mutate(func(d *storage.Document) {
		for i := 0; i < n; i++ {
			d.Tasks = append(d.Tasks, storage.Task{
				ID:            st.NewID(),
				Title:         "seeded",
				Priority:      "medium",
				RepeatType:    "none",
				Completed:     true,
				CompletedDate: &today,
			})
		}
	}))
}

func TestAddPointsBreakdown(t *testing.T) {
	c := newClock(2026, time.March, 1)
	svc := newTestService(t, c)

	require.NoError(t, svc.AddPoints(10, engine.SourceTasks))
	require.NoError(t, svc.AddPoints(5, engine.SourceHabits))
	require.NoError(t, svc.AddPoints(3, engine.SourceProjects))
	require.NoError(t, svc.AddPoints(2, engine.SourceStreakBonus))

	stats := svc.Store().UserStats()
	assert.Equal(t, 20, stats.TotalPoints)
	assert.Equal(t, 10, stats.PointsBreakdown.Tasks)
	assert.Equal(t, 5, stats.PointsBreakdown.Habits)
	assert.Equal(t, 3, stats.PointsBreakdown.Projects)
	assert.Equal(t, 2, stats.PointsBreakdown.StreakBonus)
}

func TestAddPointsUnknownSourceUpdatesTotalOnly(t *testing.T) {
	c := newClock(2026, time.March, 1)
	svc := newTestService(t, c)

	require.NoError(t, svc.AddPoints(7, engine.PointSource("bonus")))

	stats := svc.Store().UserStats()
	assert.Equal(t, 7, stats.TotalPoints)
	assert.Equal(t, storage.PointsBreakdown{}, stats.PointsBreakdown)
}

func TestUpdateLevelBoundaries(t *testing.T) {
	cases := []struct {
		completed int
		level     int
	}{
		{0, 1},
		{29, 1},
		{30, 2},
		{59, 2},
		{60, 3},
	}
	for _, tc := range cases {
		c := newClock(2026, time.March, 1)
		svc := newTestService(t, c)
		seedCompletedTasks(t, svc.Store(), tc.completed)

		require.NoError(t, svc.UpdateLevel())
		assert.Equal(t, tc.level, svc.Store().UserStats().Level,
			"%d completed tasks", tc.completed)
	}
}

func TestUpdateSettingsRecomputesLevel(t *testing.T) {
	c := newClock(2026, time.March, 1)
	svc := newTestService(t, c)
	seedCompletedTasks(t, svc.Store(), 10)

	require.NoError(t, svc.UpdateLevel())
	assert.Equal(t, 1, svc.Store().UserStats().Level)

	perLevel := 5
	settings, err := svc.UpdateSettings(storage.SettingsPatch{TasksPerLevel: &perLevel})
	require.NoError(t, err)
	assert.Equal(t, 5, settings.TasksPerLevel)
	assert.Equal(t, 3, svc.Store().UserStats().Level)
}

func TestLevelGuardsAgainstZeroTasksPerLevel(t *testing.T) {
	c := newClock(2026, time.March, 1)
	svc := newTestService(t, c)
	require.NoError(t, svc.Store().Mutate(func(d *storage.Document) {
		d.Settings.TasksPerLevel = 0
	}))
	seedCompletedTasks(t, svc.Store(), 30)

	require.NoError(t, svc.UpdateLevel())
	assert.Equal(t, 2, svc.Store().UserStats().Level)
}

func TestDailyStreak(t *testing.T) {
	c := newClock(2026, time.March, 1)
	svc := newTestService(t, c)
	stats := func() storage.UserStats { return svc.Store().UserStats() }

	// First qualifying action starts the streak at 1.
	require.NoError(t, svc.UpdateDailyStreak(true))
	assert.Equal(t, 1, stats().DailyStreak)
	require.NotNil(t, stats().LastActivityDate)
	assert.Equal(t, c.Today(), *stats().LastActivityDate)

	// Same day again: idempotent.
	require.NoError(t, svc.UpdateDailyStreak(true))
	assert.Equal(t, 1, stats().DailyStreak)

	// Next day extends.
	c.AdvanceDays(1)
	require.NoError(t, svc.UpdateDailyStreak(true))
	assert.Equal(t, 2, stats().DailyStreak)

	c.AdvanceDays(1)
	require.NoError(t, svc.UpdateDailyStreak(true))
	assert.Equal(t, 3, stats().DailyStreak)

	// A gap restarts at 1, never below.
	c.AdvanceDays(3)
	require.NoError(t, svc.UpdateDailyStreak(true))
	assert.Equal(t, 1, stats().DailyStreak)
	assert.Equal(t, c.Today(), *stats().LastActivityDate)
}

func TestDailyStreakNoIncrementStillStampsActivity(t *testing.T) {
	c := newClock(2026, time.March, 1)
	svc := newTestService(t, c)

	require.NoError(t, svc.UpdateDailyStreak(false))
	stats := svc.Store().UserStats()
	assert.Equal(t, 0, stats.DailyStreak)
	require.NotNil(t, stats.LastActivityDate)
	assert.Equal(t, c.Today(), *stats.LastActivityDate)
}
