package store

import (
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// ChatRegistry is the persisted set of chat ids the bot has seen, the
// fan-out list for broadcasts. Ids only ever get added.
type ChatRegistry struct {
	mu    sync.Mutex
	path  string
	chats map[int64]struct{}
}

// NewChatRegistry loads the known-chats JSON file; a missing or malformed
// file starts an empty registry.
func NewChatRegistry(path string) *ChatRegistry {
	r := &ChatRegistry{path: path, chats: make(map[int64]struct{})}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.Errorf("read known chats: %v", err)
		}
		return r
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		logrus.Errorf("parse known chats: %v", err)
		return r
	}
	for _, id := range ids {
		r.chats[id] = struct{}{}
	}
	return r
}

// Register records a chat id, returning true when it is new. The file is
// rewritten only when the set actually changed, so the per-message call is
// a map lookup almost always.
func (r *ChatRegistry) Register(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chats[chatID]; ok {
		return false
	}
	r.chats[chatID] = struct{}{}
	if err := r.persistLocked(); err != nil {
		logrus.Errorf("persist known chats: %v", err)
	}
	return true
}

// All returns a sorted snapshot for broadcast fan-out.
func (r *ChatRegistry) All() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.chats))
	for id := range r.chats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *ChatRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.chats)
}

func (r *ChatRegistry) persistLocked() error {
	ids := make([]int64, 0, len(r.chats))
	for id := range r.chats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(r.path, data)
}
