package attendance

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) (*Log, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attendance.txt")
	return NewLog(path, logs.GetLoggerFromLevel(slog.LevelDebug)), path
}

func TestLog_RecordPresent_AppendsMemoryAndFile(t *testing.T) {
	req := require.New(t)
	log, path := newTestLog(t)
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	// When a student is recorded present
	ok := log.RecordPresent("Alice", "id1", at)

	// Then the in-memory view and the durable file agree
	req.True(ok)
	records := log.List()
	req.Len(records, 1)
	req.Equal("Alice", records[0].DisplayName)
	req.Equal("ID1", records[0].ID)

	content, err := os.ReadFile(path)
	req.NoError(err)
	req.Contains(string(content), "Alice (ID1) - Present [2026-03-02 09:30:00]")
}

func TestLog_RecordPresent_SuppressesDuplicateById(t *testing.T) {
	req := require.New(t)
	log, _ := newTestLog(t)
	at := time.Now()

	req.True(log.RecordPresent("Alice", "id1", at))

	// A re-registration under a case variant of the same id adds nothing
	req.False(log.RecordPresent("Alice", "ID1", at))
	req.Len(log.List(), 1)
}

func TestLog_StartSession_WritesHeader(t *testing.T) {
	req := require.New(t)
	log, path := newTestLog(t)

	log.StartSession()

	content, err := os.ReadFile(path)
	req.NoError(err)
	req.Contains(string(content), "===== Attendance Session Started at ")
}

func TestLog_ClearMemory_KeepsFile(t *testing.T) {
	req := require.New(t)
	log, path := newTestLog(t)
	log.StartSession()
	log.RecordPresent("Alice", "id1", time.Now())

	// When the server stops, only the in-memory view is dropped
	log.ClearMemory()

	req.Empty(log.List())
	content, err := os.ReadFile(path)
	req.NoError(err)
	req.Contains(string(content), "Alice (ID1) - Present")

	// And the same student can be recorded again in the next session
	req.True(log.RecordPresent("Alice", "id1", time.Now()))
}

func TestLog_Reset_DeletesFileAndIsIdempotent(t *testing.T) {
	req := require.New(t)
	log, path := newTestLog(t)
	log.RecordPresent("Alice", "id1", time.Now())

	log.Reset()

	req.Empty(log.List())
	_, err := os.Stat(path)
	req.True(os.IsNotExist(err))

	// A second reset must not error even though the file is gone
	log.Reset()
	req.Empty(log.List())
}

func TestLog_List_ReturnsJoinOrderedCopy(t *testing.T) {
	req := require.New(t)
	log, _ := newTestLog(t)

	log.RecordPresent("Alice", "id1", time.Now())
	log.RecordPresent("Bob", "id2", time.Now())
	log.RecordPresent("Carol", "id3", time.Now())

	records := log.List()
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.DisplayName)
	}
	req.Equal("Alice,Bob,Carol", strings.Join(names, ","))

	// The returned slice is a copy, not a live view
	records[0].DisplayName = "Mallory"
	req.Equal("Alice", log.List()[0].DisplayName)
}

func TestLog_FileFailure_IsNonFatal(t *testing.T) {
	req := require.New(t)
	// Point the mirror at a path that cannot be created
	dir := t.TempDir()
	log := NewLog(filepath.Join(dir, "missing", "attendance.txt"), logs.GetLoggerFromLevel(slog.LevelDebug))

	// The in-memory record stands even though the file write failed
	req.True(log.RecordPresent("Alice", "id1", time.Now()))
	req.Len(log.List(), 1)
}
