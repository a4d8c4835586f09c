// Unit tests for store construction: schema creation, settings seeding,
// and reopen behavior.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalenote/kalenote/pkg/types"
)

// setupStore opens a Store backed by a temp file and closes it when the
// test finishes.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kalenote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesFileAndParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "kalenote.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	require.NoError(t, err, "backing file not created")
}

func TestOpen_SeedsDefaultSettings(t *testing.T) {
	s := setupStore(t)

	settings, err := s.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultSettings(), settings)
}

func TestOpen_ReopenPreservesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kalenote.db")

	s, err := Open(path)
	require.NoError(t, err)

	id, err := s.CreateTask(types.NewTask{Content: "survive reopen", Status: types.StatusTodo})
	require.NoError(t, err)
	require.NoError(t, s.ReplaceSettings(types.Settings{Theme: "dark", TimeMode: "weekly", AvailableTime: 6}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	tasks, err := s.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, id, tasks[0].ID)
	assert.Equal(t, "survive reopen", tasks[0].Content)

	// Seeding must not overwrite the replaced settings row.
	settings, err := s.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, types.Settings{Theme: "dark", TimeMode: "weekly", AvailableTime: 6}, settings)
}

func TestClose_Idempotent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "kalenote.db"))
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.ListTasks()
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = s.GetSettings()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}
