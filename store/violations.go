package store

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"cyrusbot/model"

	"github.com/sirupsen/logrus"
)

// RecentCapacity bounds the in-memory violation history. The durable file
// keeps everything.
const RecentCapacity = 5000

// Archive is an optional queryable mirror of the violation log (es, mongo or
// mysql behind client.Provider). Failures there never block the log itself.
type Archive interface {
	AddViolation(*model.Violation) error
}

// ViolationLog is the append-only record of moderation actions: a bounded
// ring buffer for quick inspection plus an unbounded tab-separated file for
// audit. The buffer update always succeeds; a durable-write or archive
// failure is logged independently.
type ViolationLog struct {
	mu      sync.Mutex
	path    string
	entries []model.Violation
	archive Archive
}

// NewViolationLog writes durable entries to path. archive may be nil.
func NewViolationLog(path string, archive Archive) *ViolationLog {
	return &ViolationLog{path: path, archive: archive}
}

// Append records a violation in the buffer, the durable file and, when
// configured, the archive.
func (l *ViolationLog) Append(v model.Violation) {
	l.mu.Lock()
	if len(l.entries) >= RecentCapacity {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = v
	} else {
		l.entries = append(l.entries, v)
	}
	l.mu.Unlock()

	if err := l.appendFile(v); err != nil {
		logrus.Errorf("violation log write: %v", err)
	}
	if l.archive != nil {
		if err := l.archive.AddViolation(&v); err != nil {
			logrus.Errorf("violation archive write: %v", err)
		}
	}
}

// Recent returns up to n entries, most recent last. n <= 0 returns the whole
// buffer.
func (l *ViolationLog) Recent(n int) []model.Violation {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]model.Violation, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

func (l *ViolationLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// ExportFullText returns the complete durable log for owner download.
func (l *ViolationLog) ExportFullText() (string, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(raw), nil
}

func (l *ViolationLog) appendFile(v model.Violation) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(FormatViolation(v) + "\n")
	return err
}

// FormatViolation renders one durable log line:
// timestamp, user_id, username, reason, detail, tab-separated.
func FormatViolation(v model.Violation) string {
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s",
		v.Time.UTC().Format(time.RFC3339),
		v.UserID,
		flatten(v.Username),
		flatten(v.Reason),
		flatten(v.Detail),
	)
}

// flatten keeps the offending text on one TSV line.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
