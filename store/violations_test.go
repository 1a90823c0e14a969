package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cyrusbot/model"
)

func TestViolationLogBounded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	l := NewViolationLog(path, nil)

	const total = 6000
	for i := 0; i < total; i++ {
		l.Append(model.Violation{
			Time:     time.Unix(int64(i), 0),
			UserID:   int64(i),
			Username: "u",
			Reason:   model.ReasonAbuse,
			Detail:   fmt.Sprintf("entry %d", i),
		})
	}

	recent := l.Recent(0)
	if len(recent) != RecentCapacity {
		t.Fatalf("buffer holds %d entries, want %d", len(recent), RecentCapacity)
	}
	if recent[0].UserID != total-RecentCapacity {
		t.Errorf("oldest buffered entry = %d, want %d", recent[0].UserID, total-RecentCapacity)
	}
	if recent[len(recent)-1].UserID != total-1 {
		t.Errorf("newest buffered entry = %d, want %d", recent[len(recent)-1].UserID, total-1)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != total {
		t.Errorf("durable log holds %d lines, want %d", len(lines), total)
	}
}

func TestViolationLogRecentN(t *testing.T) {
	l := NewViolationLog(filepath.Join(t.TempDir(), "logs.txt"), nil)
	for i := 0; i < 10; i++ {
		l.Append(model.Violation{UserID: int64(i)})
	}
	recent := l.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("Recent(3) returned %d entries", len(recent))
	}
	for i, want := range []int64{7, 8, 9} {
		if recent[i].UserID != want {
			t.Errorf("recent[%d].UserID = %d, want %d", i, recent[i].UserID, want)
		}
	}
}

func TestFormatViolation(t *testing.T) {
	v := model.Violation{
		Time:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UserID:   42,
		Username: "eve",
		Reason:   model.ReasonAbuse,
		Detail:   "line one\nline\ttwo",
	}
	got := FormatViolation(v)
	want := "2024-05-01T12:00:00Z\t42\teve\tabuse\tline one line two"
	if got != want {
		t.Errorf("FormatViolation = %q, want %q", got, want)
	}
}

func TestViolationLogExportMissingFile(t *testing.T) {
	l := NewViolationLog(filepath.Join(t.TempDir(), "logs.txt"), nil)
	content, err := l.ExportFullText()
	if err != nil {
		t.Fatal(err)
	}
	if content != "" {
		t.Errorf("missing file must export empty, got %q", content)
	}
}

type recordingArchive struct {
	entries []*model.Violation
}

func (a *recordingArchive) AddViolation(v *model.Violation) error {
	a.entries = append(a.entries, v)
	return nil
}

func TestViolationLogArchiveMirror(t *testing.T) {
	arch := &recordingArchive{}
	l := NewViolationLog(filepath.Join(t.TempDir(), "logs.txt"), arch)
	l.Append(model.Violation{UserID: 7, Reason: model.ReasonAbuse})
	if len(arch.entries) != 1 || arch.entries[0].UserID != 7 {
		t.Errorf("archive mirror got %+v", arch.entries)
	}
}
