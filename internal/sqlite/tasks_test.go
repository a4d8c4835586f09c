// Unit tests for task CRUD and bulk clear.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalenote/kalenote/pkg/types"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateTask_RoundTrip(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTask(types.NewTask{
		Content:      "write report",
		Status:       types.StatusTodo,
		Priority:     2,
		Tags:         `["work"]`,
		TimeDuration: intPtr(45),
		DueDate:      strPtr("2026-09-01"),
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	got := tasks[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "write report", got.Content)
	assert.Equal(t, types.StatusTodo, got.Status)
	assert.Equal(t, 2, got.Priority)
	assert.Equal(t, `["work"]`, got.Tags)
	require.NotNil(t, got.TimeDuration)
	assert.Equal(t, 45, *got.TimeDuration)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2026-09-01", *got.DueDate)
	assert.NotEmpty(t, got.CreatedAt, "created_at must be stamped by the store")
	assert.Nil(t, got.CompletedAt, "completed_at must start absent")
}

func TestCreateTask_OptionalFieldsAbsent(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateTask(types.NewTask{Content: "bare task", Status: types.StatusInbox})
	require.NoError(t, err)

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].TimeDuration)
	assert.Nil(t, tasks[0].DueDate)
	assert.Equal(t, "[]", tasks[0].Tags)
}

func TestCreateTask_InvalidStatus(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateTask(types.NewTask{Content: "old task", Status: "archived"})
	require.ErrorIs(t, err, types.ErrInvalidStatus)

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	assert.Empty(t, tasks, "no row may be created on a rejected status")
}

func TestListTasks_OrderedByCreatedAtDesc(t *testing.T) {
	s := setupStore(t)

	// Distinct created_at values, inserted out of order.
	stamps := []string{"2026-01-02 10:00:00", "2026-01-01 10:00:00", "2026-01-03 10:00:00"}
	for _, stamp := range stamps {
		_, err := s.db.Exec(
			"INSERT INTO tasks (content, status, created_at) VALUES (?, ?, ?)",
			"task at "+stamp, types.StatusInbox, stamp,
		)
		require.NoError(t, err)
	}

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "2026-01-03 10:00:00", tasks[0].CreatedAt)
	assert.Equal(t, "2026-01-02 10:00:00", tasks[1].CreatedAt)
	assert.Equal(t, "2026-01-01 10:00:00", tasks[2].CreatedAt)
}

func TestDeleteTask(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateTask(types.NewTask{Content: "short lived", Status: types.StatusInbox})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(id))

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Deleting an unknown ID succeeds trivially.
	require.NoError(t, s.DeleteTask(id))
	require.NoError(t, s.DeleteTask(99999))
}

func TestClearStatus(t *testing.T) {
	s := setupStore(t)

	for _, status := range []string{types.StatusDone, types.StatusDone, types.StatusTodo, types.StatusDoing} {
		_, err := s.CreateTask(types.NewTask{Content: "task " + status, Status: status})
		require.NoError(t, err)
	}

	require.NoError(t, s.ClearStatus(types.StatusDone))

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.NotEqual(t, types.StatusDone, task.Status)
	}

	// Immediately clearing again is a no-op.
	require.NoError(t, s.ClearStatus(types.StatusDone))
	tasks, err = s.ListTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestClearStatus_UnrecognizedValue(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateTask(types.NewTask{Content: "keep me", Status: types.StatusInbox})
	require.NoError(t, err)

	// Not validated against the enumeration: deletes zero rows.
	require.NoError(t, s.ClearStatus("archived"))

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

// Lifecycle scenario: create a task and a preset, complete the task, and
// verify both read back correctly.
func TestTaskAndPresetLifecycle(t *testing.T) {
	s := setupStore(t)

	taskID, err := s.CreateTask(types.NewTask{
		Content:  "buy milk",
		Status:   types.StatusTodo,
		Priority: 1,
		Tags:     "[]",
	})
	require.NoError(t, err)

	presetID, err := s.CreatePreset(types.NewCalendarPreset{
		Name:            "Work",
		DefaultTags:     `["work"]`,
		DefaultPriority: 2,
	})
	require.NoError(t, err)

	err = s.UpdateTask(taskID, types.TaskPatch{
		Status:      strPtr(types.StatusDone),
		CompletedAt: strPtr("2026-08-29 12:00:00"),
	})
	require.NoError(t, err)

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, types.StatusDone, tasks[0].Status)
	require.NotNil(t, tasks[0].CompletedAt)
	assert.Equal(t, "2026-08-29 12:00:00", *tasks[0].CompletedAt)
	assert.Equal(t, "buy milk", tasks[0].Content)

	presets, err := s.ListPresets()
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, presetID, presets[0].ID)
	assert.Equal(t, "Work", presets[0].Name)
	assert.Equal(t, `["work"]`, presets[0].DefaultTags)
	assert.Equal(t, 2, presets[0].DefaultPriority)
}
