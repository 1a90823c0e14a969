package store

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

const (
	MatcherScan        = "scan"
	MatcherAhoCorasick = "ahocorasick"

	MatchModeSubstring = "substring"
	MatchModeToken     = "token"
)

// matcher is the swappable matching strategy behind WordStore.ContainsMatch.
// rebuild is called under the store's write lock after every mutation.
type matcher interface {
	match(text string, tokens []string) bool
	rebuild(words []string)
}

// scanMatcher is a linear scan over the word list, fine for the tens to
// low-hundreds of words a group blacklist holds.
type scanMatcher struct {
	words     []string
	tokenOnly bool
}

func (m *scanMatcher) rebuild(words []string) {
	m.words = words
}

func (m *scanMatcher) match(text string, tokens []string) bool {
	for _, w := range m.words {
		for _, token := range tokens {
			if token == w {
				return true
			}
		}
		if !m.tokenOnly && strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// acMatcher runs all words at once through an Aho-Corasick automaton,
// rebuilt whenever the blacklist changes.
type acMatcher struct {
	machine   *ahocorasick.Matcher
	words     map[string]struct{}
	tokenOnly bool
}

func (m *acMatcher) rebuild(words []string) {
	m.words = make(map[string]struct{}, len(words))
	for _, w := range words {
		m.words[w] = struct{}{}
	}
	if len(words) == 0 {
		m.machine = nil
		return
	}
	m.machine = ahocorasick.NewStringMatcher(words)
}

func (m *acMatcher) match(text string, tokens []string) bool {
	if m.tokenOnly {
		for _, token := range tokens {
			if _, ok := m.words[token]; ok {
				return true
			}
		}
		return false
	}
	if m.machine == nil {
		return false
	}
	return len(m.machine.Match([]byte(text))) > 0
}

func newMatcher(strategy, mode string) matcher {
	tokenOnly := mode == MatchModeToken
	if strategy == MatcherAhoCorasick {
		return &acMatcher{tokenOnly: tokenOnly}
	}
	return &scanMatcher{tokenOnly: tokenOnly}
}
