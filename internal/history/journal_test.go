package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	journal, err := OpenJournal(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { journal.Close() })
	return journal
}

func TestJournal_RecordAndFinish(t *testing.T) {
	journal := openTestJournal(t)

	entry, err := journal.Record("list files", "ls -la", "claude-haiku-4-5-20251001", "/home")
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.Executed)
	assert.False(t, entry.ExitCode.Valid)

	entry, err = journal.Finish(entry, 2)
	require.NoError(t, err)
	assert.True(t, entry.Executed)
	assert.True(t, entry.ExitCode.Valid)
	assert.Equal(t, int32(2), entry.ExitCode.Int32)

	entries, err := journal.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "list files", entries[0].Prompt)
	assert.Equal(t, "ls -la", entries[0].Command)
	assert.Equal(t, "/home", entries[0].Directory)
	assert.True(t, entries[0].Executed)
	assert.Equal(t, int32(2), entries[0].ExitCode.Int32)
}

func TestJournal_RecentIsOldestFirstAndLimited(t *testing.T) {
	journal := openTestJournal(t)

	for _, command := range []string{"pwd", "ls", "date"} {
		_, err := journal.Record("prompt", command, "m", "/tmp")
		require.NoError(t, err)
	}

	entries, err := journal.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ls", entries[0].Command)
	assert.Equal(t, "date", entries[1].Command)
}

func TestJournal_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	journal, err := OpenJournal(path)
	require.NoError(t, err)
	_, err = journal.Record("show disk usage", "df -h", "m", "/")
	require.NoError(t, err)
	require.NoError(t, journal.Close())

	reopened, err := OpenJournal(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.Recent(5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "df -h", entries[0].Command)
}
