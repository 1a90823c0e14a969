package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestChatRegistryRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "known_chats.json")
	r := NewChatRegistry(path)

	if !r.Register(100) {
		t.Error("first registration must report new")
	}
	if r.Register(100) {
		t.Error("repeat registration must report known")
	}
	if !r.Register(-200) {
		t.Error("distinct chat must report new")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []int64{-200, 100}) {
		t.Errorf("persisted ids = %v", ids)
	}
}

func TestChatRegistryReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "known_chats.json")
	r := NewChatRegistry(path)
	r.Register(1)
	r.Register(2)

	reloaded := NewChatRegistry(path)
	if got := reloaded.All(); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("reloaded chats = %v", got)
	}
}

func TestChatRegistryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "known_chats.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewChatRegistry(path)
	if r.Len() != 0 {
		t.Error("corrupt file must start an empty registry")
	}
}
