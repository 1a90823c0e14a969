// Package store holds the bot's persisted data sets: the word blacklist,
// the known-chats registry, chat settings, ignore exemptions, warning
// counters and the violation log. Each store carries one coarse mutex;
// updates for a single chat are already serialized by the app layer, the
// locks cover cross-chat traffic and the backup ticker.
package store

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// seedWords is the built-in blacklist used when no blacklist file exists yet.
var seedWords = []string{"bc", "mc", "bsdk", "madarchod", "bhenchod", "chutiya", "gandu"}

// WordStore is the persisted blacklist. Matching runs against a swappable
// strategy rebuilt on every mutation.
type WordStore struct {
	mu      sync.RWMutex
	path    string
	words   map[string]struct{}
	matcher matcher
}

// NewWordStore loads the blacklist from path, falling back to the seed list
// when the file is absent. The seed list is not written to disk until the
// first mutation. strategy and mode are the matcher/match_mode config values.
func NewWordStore(path, strategy, mode string) (*WordStore, error) {
	s := &WordStore{
		path:    path,
		words:   make(map[string]struct{}),
		matcher: newMatcher(strategy, mode),
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		for _, w := range seedWords {
			s.words[w] = struct{}{}
		}
	} else {
		for _, line := range strings.Split(string(raw), "\n") {
			if w := NormalizeWord(line); w != "" {
				s.words[w] = struct{}{}
			}
		}
		if len(s.words) == 0 {
			for _, w := range seedWords {
				s.words[w] = struct{}{}
			}
		}
	}
	s.matcher.rebuild(s.sortedLocked())
	return s, nil
}

// NormalizeText lowercases and strips the * and - characters users insert
// to dodge matching ("b-c", "b*c").
func NormalizeText(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "*", "")
	return strings.ReplaceAll(text, "-", "")
}

// NormalizeWord normalizes a single blacklist word the same way.
func NormalizeWord(word string) string {
	return NormalizeText(strings.TrimSpace(word))
}

// ContainsMatch reports whether text triggers the blacklist. An ignored-word
// hit anywhere in the normalized text overrides any blacklist hit: exemptions
// win without the blacklist itself being edited. Empty text never matches.
func (s *WordStore) ContainsMatch(text string, ignores *IgnoreList) bool {
	if text == "" {
		return false
	}
	norm := NormalizeText(text)
	if ignores != nil && ignores.HasIgnoredWord(norm) {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matcher.match(norm, strings.Fields(norm))
}

// Contains reports exact membership of a single normalized word.
func (s *WordStore) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.words[NormalizeWord(word)]
	return ok
}

// Add inserts a word and persists the store. added is false when the word was
// already present (not an error). A persist failure is returned so the caller
// can report it instead of claiming success.
func (s *WordStore) Add(word string) (added bool, err error) {
	w := NormalizeWord(word)
	if w == "" {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.words[w]; ok {
		return false, nil
	}
	s.words[w] = struct{}{}
	s.matcher.rebuild(s.sortedLocked())
	return true, s.persistLocked()
}

// Remove deletes a word and persists the store. removed is false when the
// word was not present.
func (s *WordStore) Remove(word string) (removed bool, err error) {
	w := NormalizeWord(word)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.words[w]; !ok {
		return false, nil
	}
	delete(s.words, w)
	s.matcher.rebuild(s.sortedLocked())
	return true, s.persistLocked()
}

// ExportText renders the store in its on-disk format: sorted words, one per
// line. Deterministic, so backups of an unchanged store are byte-identical.
func (s *WordStore) ExportText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.Join(s.sortedLocked(), "\n")
}

// ImportText replaces the whole store from an uploaded backup file's
// contents and persists the result atomically.
func (s *WordStore) ImportText(content string) error {
	words := make(map[string]struct{})
	for _, line := range strings.Split(content, "\n") {
		if w := NormalizeWord(line); w != "" {
			words[w] = struct{}{}
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = words
	s.matcher.rebuild(s.sortedLocked())
	return s.persistLocked()
}

// Words returns a sorted snapshot.
func (s *WordStore) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

func (s *WordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

func (s *WordStore) sortedLocked() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func (s *WordStore) persistLocked() error {
	return writeFileAtomic(s.path, []byte(strings.Join(s.sortedLocked(), "\n")))
}
