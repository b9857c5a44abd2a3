package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreReadMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	data, err := store.Read(KeyProjects)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write(KeyProjects, []byte(`[{"project_id":"PROJ-1"}]`)))

	data, err := store.Read(KeyProjects)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"project_id":"PROJ-1"}]`, string(data))

	// One file per key, no temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyProjects+".json", entries[0].Name())
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write(KeyCountries, []byte(`["a"]`)))
	require.NoError(t, store.Write(KeyCountries, []byte(`["a","b"]`)))

	data, err := store.Read(KeyCountries)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))
}

func TestSnapshotWritesPresentKeysOnly(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Write(KeyProjects, []byte(`[]`)))
	require.NoError(t, store.Write(KeyStaff, []byte(`[]`)))

	dir := t.TempDir()
	written, err := Snapshot(store, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Regexp(t, `^telecor_\w+_\d{8}-\d{6}\.json$`, entry.Name())
	}
}

func TestPruneSnapshotsRemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "telecor_projects_20200101-020000.json")
	require.NoError(t, os.WriteFile(stale, []byte(`[]`), 0644))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh := filepath.Join(dir, "telecor_staff_20990101-020000.json")
	require.NoError(t, os.WriteFile(fresh, []byte(`[]`), 0644))

	removed, err := PruneSnapshots(dir, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestPruneSnapshotsMissingDir(t *testing.T) {
	removed, err := PruneSnapshots(filepath.Join(t.TempDir(), "nope"), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
