package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSettingsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s := NewSettings(path)
	if s.WarnLimit() != 3 {
		t.Errorf("default warn limit = %d, want 3", s.WarnLimit())
	}
	if !strings.Contains(s.WelcomeMessage(), "{user}") {
		t.Error("default welcome message must carry the {user} placeholder")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("defaults must not be persisted before the first mutation")
	}
}

func TestSettingsRenderWelcome(t *testing.T) {
	s := NewSettings(filepath.Join(t.TempDir(), "config.json"))
	if err := s.SetWelcomeMessage("Hi {user}, mind the {rules}!"); err != nil {
		t.Fatal(err)
	}
	got := s.RenderWelcome("Ada")
	if got != "Hi Ada, mind the {rules}!" {
		t.Errorf("RenderWelcome = %q", got)
	}
}

func TestSettingsPersistAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s := NewSettings(path)
	if err := s.SetWarnLimit(5); err != nil {
		t.Fatal(err)
	}
	reloaded := NewSettings(path)
	if reloaded.WarnLimit() != 5 {
		t.Errorf("reloaded warn limit = %d, want 5", reloaded.WarnLimit())
	}
}

func TestSettingsRejectsBadLimit(t *testing.T) {
	s := NewSettings(filepath.Join(t.TempDir(), "config.json"))
	if err := s.SetWarnLimit(0); err == nil {
		t.Error("zero warn limit must be rejected")
	}
}

func TestSettingsCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewSettings(path)
	if s.WarnLimit() != 3 {
		t.Errorf("corrupt file must fall back to defaults, got limit %d", s.WarnLimit())
	}
}
