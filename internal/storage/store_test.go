package storage_test

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"momentum/internal/storage"
)

func newTestStore(t *testing.T, now func() time.Time) *storage.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	backend, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	opts := []storage.Option{}
	if now != nil {
		opts = append(opts, storage.WithNow(now))
	}
	st, err := storage.New(backend, opts...)
	require.NoError(t, err)
	return st
}

func strPtr(s string) *string { return &s }

func TestAddTaskGeneratesUniqueIDs(t *testing.T) {
	st := newTestStore(t, nil)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		task, err := st.AddTask(storage.Task{Title: "t", Priority: "medium", Points: 1})
		require.NoError(t, err)
		require.NotEmpty(t, task.ID)
		require.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
	assert.Len(t, st.Tasks(), 100)
}

func TestAddTaskForcesIncomplete(t *testing.T) {
	st := newTestStore(t, nil)

	date := "2026-01-01"
	task, err := st.AddTask(storage.Task{Title: "t", Completed: true, CompletedDate: &date})
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedDate)
	assert.Equal(t, "none", task.RepeatType)
	assert.False(t, task.CreatedDate.IsZero())
}

func TestUpdateTaskMergesPatch(t *testing.T) {
	st := newTestStore(t, nil)

	task, err := st.AddTask(storage.Task{
		Title:    "Write report",
		Category: "Work",
		Priority: "high",
		Points:   20,
	})
	require.NoError(t, err)

	updated, err := st.UpdateTask(task.ID, storage.TaskPatch{Title: strPtr("Write annual report")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Write annual report", updated.Title)
	assert.Equal(t, "Work", updated.Category)
	assert.Equal(t, "high", updated.Priority)
	assert.Equal(t, 20, updated.Points)
}

func TestUpdateTaskMissingIDLeavesCollectionUnchanged(t *testing.T) {
	st := newTestStore(t, nil)

	task, err := st.AddTask(storage.Task{Title: "only", Priority: "low"})
	require.NoError(t, err)

	missing, err := st.UpdateTask("no-such-id", storage.TaskPatch{Title: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, missing)

	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, task.Title, tasks[0].Title)
}

func TestDeleteTaskIdempotent(t *testing.T) {
	st := newTestStore(t, nil)

	task, err := st.AddTask(storage.Task{Title: "gone", Priority: "low"})
	require.NoError(t, err)
	keep, err := st.AddTask(storage.Task{Title: "kept", Priority: "low"})
	require.NoError(t, err)

	require.NoError(t, st.DeleteTask(task.ID))
	require.NoError(t, st.DeleteTask(task.ID))

	tasks := st.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
}

func TestDeleteProjectNullsTaskReferences(t *testing.T) {
	st := newTestStore(t, nil)

	project, err := st.AddProject(storage.Project{Name: "Home", Color: "green"})
	require.NoError(t, err)
	other, err := st.AddProject(storage.Project{Name: "Work", Color: "blue"})
	require.NoError(t, err)

	inProject, err := st.AddTask(storage.Task{Title: "a", Priority: "low", ProjectID: &project.ID})
	require.NoError(t, err)
	inOther, err := st.AddTask(storage.Task{Title: "b", Priority: "low", ProjectID: &other.ID})
	require.NoError(t, err)

	require.NoError(t, st.DeleteProject(project.ID))

	assert.Len(t, st.Projects(), 1)
	tasks := st.Tasks()
	require.Len(t, tasks, 2)

	got := st.Task(inProject.ID)
	require.NotNil(t, got)
	assert.Nil(t, got.ProjectID)
	assert.Equal(t, "a", got.Title)

	untouched := st.Task(inOther.ID)
	require.NotNil(t, untouched)
	require.NotNil(t, untouched.ProjectID)
	assert.Equal(t, other.ID, *untouched.ProjectID)
}

func TestAddCategory(t *testing.T) {
	st := newTestStore(t, nil)

	added, err := st.AddCategory("finance", "Subscriptions")
	require.NoError(t, err)
	assert.True(t, added)

	before := len(st.Categories("finance"))
	added, err = st.AddCategory("finance", "Subscriptions")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, st.Categories("finance"), before)

	added, err = st.AddCategory("finance", "   ")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = st.AddCategory("vehicles", "Car")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestExportImportRoundTrip(t *testing.T) {
	st := newTestStore(t, nil)

	_, err := st.AddTask(storage.Task{Title: "t", Priority: "medium", Points: 5})
	require.NoError(t, err)
	_, err = st.AddProject(storage.Project{Name: "p", Color: "red"})
	require.NoError(t, err)
	_, err = st.AddHabit(storage.Habit{Name: "h", Icon: "🔁", Points: 3})
	require.NoError(t, err)
	_, err = st.AddExpense(storage.FinanceItem{Description: "coffee", Amount: 3.5})
	require.NoError(t, err)

	exported, err := st.ExportData()
	require.NoError(t, err)

	require.NoError(t, st.ImportData(exported))

	again, err := st.ExportData()
	require.NoError(t, err)
	assert.JSONEq(t, string(exported), string(again))
}

func TestImportRejectsInvalidPayloads(t *testing.T) {
	st := newTestStore(t, nil)

	cases := map[string]string{
		"not json":         `{"version":`,
		"missing version":  `{"tasks":[],"projects":[]}`,
		"missing tasks":    `{"version":"1.0.0","projects":[]}`,
		"missing projects": `{"version":"1.0.0","tasks":[]}`,
		"null tasks":       `{"version":"1.0.0","tasks":null,"projects":[]}`,
	}
	for name, payload := range cases {
		err := st.ImportData([]byte(payload))
		require.Error(t, err, name)
		assert.ErrorIs(t, err, storage.ErrInvalidImport, name)
	}

	// Minimal valid payload: version plus empty tasks and projects.
	require.NoError(t, st.ImportData([]byte(`{"version":"1.0.0","tasks":[],"projects":[]}`)))
	assert.Empty(t, st.Tasks())
}

func TestClearAllDataRecreatesDefaults(t *testing.T) {
	st := newTestStore(t, nil)

	_, err := st.AddTask(storage.Task{Title: "t", Priority: "low"})
	require.NoError(t, err)
	_, err = st.AddCategory("tasks", "Errands")
	require.NoError(t, err)

	require.NoError(t, st.ClearAllData())

	assert.Empty(t, st.Tasks())
	assert.Equal(t, 0, st.UserStats().TotalPoints)
	assert.Equal(t, 1, st.UserStats().Level)
	assert.Contains(t, st.Categories("tasks"), "Work")
	assert.NotContains(t, st.Categories("tasks"), "Errands")
	assert.Equal(t, storage.DefaultTasksPerLevel, st.Settings().TasksPerLevel)
}

func TestLogHabitCompletion(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	st := newTestStore(t, func() time.Time { return now })

	habit, err := st.AddHabit(storage.Habit{Name: "Stretch", Icon: "🧘", Points: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, habit.TargetGoal)
	assert.Equal(t, 0, habit.Streak)

	_, err = st.LogHabitCompletion(habit.ID, now)
	require.NoError(t, err)
	_, err = st.LogHabitCompletion(habit.ID, now)
	require.NoError(t, err)

	got := st.Habit(habit.ID)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Streak)
	require.NotNil(t, got.LastCompletedDate)
	assert.Equal(t, "2026-08-30", *got.LastCompletedDate)

	assert.True(t, st.IsHabitCompletedToday(habit.ID))
	assert.Equal(t, 2, st.CountHabitCompletionsToday(habit.ID))
	assert.Len(t, st.HabitLogs(), 2)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	backend, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	st, err := storage.New(backend)
	require.NoError(t, err)
	task, err := st.AddTask(storage.Task{Title: "persisted", Priority: "low"})
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	backend2, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	defer backend2.Close()
	st2, err := storage.New(backend2)
	require.NoError(t, err)

	got := st2.Task(task.ID)
	require.NotNil(t, got)
	assert.Equal(t, "persisted", got.Title)
}

func TestFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	backend := storage.NewFileBackend(path)

	st, err := storage.New(backend)
	require.NoError(t, err)
	_, err = st.AddTask(storage.Task{Title: "on disk", Priority: "low"})
	require.NoError(t, err)

	// Snapshot on disk is the plain document JSON.
	data, ok, err := backend.Load()
	require.NoError(t, err)
	require.True(t, ok)
	var doc storage.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, "on disk", doc.Tasks[0].Title)

	st2, err := storage.New(backend)
	require.NoError(t, err)
	assert.Len(t, st2.Tasks(), 1)
}

func TestFinanceSequencesAreIndependent(t *testing.T) {
	st := newTestStore(t, nil)

	_, err := st.AddExpense(storage.FinanceItem{Description: "rent", Amount: 900})
	require.NoError(t, err)
	rev, err := st.AddRevenue(storage.FinanceItem{Description: "salary", Amount: 3000})
	require.NoError(t, err)
	_, err = st.AddCharge(storage.FinanceItem{Description: "fee", Amount: 12})
	require.NoError(t, err)

	assert.Len(t, st.Expenses(), 1)
	assert.Len(t, st.Revenue(), 1)
	assert.Len(t, st.Charges(), 1)

	updated, err := st.UpdateRevenue(rev.ID, storage.FinancePatch{})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 3000.0, updated.Amount)

	require.NoError(t, st.DeleteRevenue(rev.ID))
	assert.Empty(t, st.Revenue())
	assert.Len(t, st.Expenses(), 1)
}
