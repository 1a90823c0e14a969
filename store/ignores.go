package store

import (
	"sort"
	"strings"
	"sync"
)

// IgnoreList holds the moderator-set exemptions: users whose messages are
// never checked and words whose presence suppresses any match. Both sets are
// deliberately in-memory only; they are quick overrides for an ongoing
// incident and reset with the process.
type IgnoreList struct {
	mu    sync.RWMutex
	users map[int64]struct{}
	words map[string]struct{}
}

func NewIgnoreList() *IgnoreList {
	return &IgnoreList{
		users: make(map[int64]struct{}),
		words: make(map[string]struct{}),
	}
}

func (l *IgnoreList) IgnoreUser(userID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.users[userID] = struct{}{}
}

// UnignoreUser returns false when the user was not ignored.
func (l *IgnoreList) UnignoreUser(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.users[userID]; !ok {
		return false
	}
	delete(l.users, userID)
	return true
}

func (l *IgnoreList) IsIgnoredUser(userID int64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.users[userID]
	return ok
}

func (l *IgnoreList) IgnoreWord(word string) {
	w := NormalizeWord(word)
	if w == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.words[w] = struct{}{}
}

// UnignoreWord returns false when the word was not ignored.
func (l *IgnoreList) UnignoreWord(word string) bool {
	w := NormalizeWord(word)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.words[w]; !ok {
		return false
	}
	delete(l.words, w)
	return true
}

// HasIgnoredWord reports whether any ignored word occurs in text (substring
// containment, same rule the blacklist uses).
func (l *IgnoreList) HasIgnoredWord(text string) bool {
	if text == "" {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	for w := range l.words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Snapshot returns the current exemptions for display.
func (l *IgnoreList) Snapshot() (users []int64, words []string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for id := range l.users {
		users = append(users, id)
	}
	for w := range l.words {
		words = append(words, w)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	sort.Strings(words)
	return users, words
}
