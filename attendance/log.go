// Package attendance keeps the presence records of the current class
// session: an in-memory ordered set plus a durable append-only mirror
// file. The in-memory view is authoritative while the server runs; a
// file write failure never loses a record.
package attendance

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain"
)

const (
	sessionHeaderLayout = "02-01-2006 15:04:05"
	entryLayout         = "2006-01-02 15:04:05"
)

type Log struct {
	mu       sync.Mutex
	log      *slog.Logger
	filepath string
	records  []domain.AttendanceRecord
	present  map[string]struct{} // normalized id -> seen this session
}

func NewLog(filepath string, log *slog.Logger) *Log {
	return &Log{
		log:      log,
		filepath: filepath,
		present:  make(map[string]struct{}),
	}
}

// StartSession appends a human-readable session header to the durable
// file. Called once when the server starts listening. A write failure
// is logged and otherwise ignored.
func (l *Log) StartSession() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf("\n===== Attendance Session Started at %s =====\n",
		time.Now().Format(sessionHeaderLayout))
	if err := l.appendToFile(header); err != nil {
		l.log.Error("Could not write session header", "file", l.filepath, "err", err)
	}
}

// RecordPresent marks a student present. Duplicates by normalized id
// are suppressed for the whole session; the roster's uniqueness check
// already prevents two concurrent registrations, this guards the
// re-register-after-leave case. Returns false when suppressed.
func (l *Log) RecordPresent(name, id string, at time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	student := domain.NewStudent(name, id)
	if _, seen := l.present[student.NormalizedID]; seen {
		return false
	}
	l.present[student.NormalizedID] = struct{}{}
	l.records = append(l.records, domain.AttendanceRecord{
		DisplayName: student.DisplayName,
		ID:          student.NormalizedID,
		At:          at,
	})

	entry := fmt.Sprintf("%s - Present [%s]\n", student.Display(), at.Format(entryLayout))
	if err := l.appendToFile(entry); err != nil {
		// Non-fatal: the in-memory record stands regardless.
		l.log.Error("Could not write attendance entry", "file", l.filepath, "err", err)
	}
	return true
}

// Reset clears the in-memory set and deletes the durable file.
// Both operations are best-effort and the whole call is idempotent.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clearLocked()
	if err := os.Remove(l.filepath); err != nil && !os.IsNotExist(err) {
		l.log.Error("Could not delete attendance file", "file", l.filepath, "err", err)
	}
}

// ClearMemory drops the in-memory records, leaving the file untouched.
// Used on server stop: the durable mirror survives restarts.
func (l *Log) ClearMemory() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearLocked()
}

// List returns an ordered copy of the current session's records.
func (l *Log) List() []domain.AttendanceRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.AttendanceRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Log) clearLocked() {
	l.records = nil
	l.present = make(map[string]struct{})
}

func (l *Log) appendToFile(text string) error {
	f, err := os.OpenFile(l.filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.WriteString(text); err != nil {
		return err
	}
	return nil
}
