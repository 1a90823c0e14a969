package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bot.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BOT_CONFIG", path)
}

func TestLoadMissingEnv(t *testing.T) {
	t.Setenv("BOT_CONFIG", "")
	if err := Load(); err == nil {
		t.Fatal("expected error when BOT_CONFIG is unset")
	}
}

func TestLoadMissingToken(t *testing.T) {
	writeConfig(t, `{"owner_id": 1}`)
	if err := Load(); err == nil {
		t.Fatal("expected error when bot_token is missing")
	}
}

func TestLoadMissingOwner(t *testing.T) {
	writeConfig(t, `{"bot_token": "t"}`)
	if err := Load(); err == nil {
		t.Fatal("expected error when owner_id is missing")
	}
}

func TestLoadPersistWarningsNeedsRedis(t *testing.T) {
	writeConfig(t, `{"bot_token": "t", "owner_id": 1, "persist_warnings": true}`)
	if err := Load(); err == nil {
		t.Fatal("expected error when persist_warnings is set without redis_host")
	}
}

func TestLoadSuccess(t *testing.T) {
	writeConfig(t, `{"bot_token": "t", "owner_id": 42, "log_level": 2, "matcher": "ahocorasick"}`)
	if err := Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Conf.OwnerID != 42 {
		t.Errorf("owner id = %d, want 42", Conf.OwnerID)
	}
	if Conf.DataDir != "." {
		t.Errorf("data dir default = %q, want .", Conf.DataDir)
	}
	if Conf.Matcher != "ahocorasick" {
		t.Errorf("matcher = %q", Conf.Matcher)
	}
}
