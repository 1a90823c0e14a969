package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	defaultWarnLimit      = 3
	defaultWelcomeMessage = "🚩 Welcome, {user}! This group is protected by Cyrus Security Bot. For group security and commands, DM @Cyrus_Security_bot."
)

type settingsFile struct {
	WarnLimit      int    `json:"warn_limit"`
	WelcomeMessage string `json:"welcome_message"`
}

// Settings is the persisted chat-facing configuration: the warning threshold
// and the welcome template. Built-in defaults apply until the file exists;
// the file is first written on the first mutation.
type Settings struct {
	mu   sync.RWMutex
	path string
	data settingsFile
}

// NewSettings loads the settings JSON file. A missing or malformed file
// falls back to defaults and is not surfaced to users.
func NewSettings(path string) *Settings {
	s := &Settings{
		path: path,
		data: settingsFile{WarnLimit: defaultWarnLimit, WelcomeMessage: defaultWelcomeMessage},
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.Errorf("read settings: %v", err)
		}
		return s
	}
	var data settingsFile
	if err := json.Unmarshal(raw, &data); err != nil {
		logrus.Errorf("parse settings: %v", err)
		return s
	}
	if data.WarnLimit > 0 {
		s.data.WarnLimit = data.WarnLimit
	}
	if data.WelcomeMessage != "" {
		s.data.WelcomeMessage = data.WelcomeMessage
	}
	return s
}

// WarnLimit is always at least 1.
func (s *Settings) WarnLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.WarnLimit < 1 {
		return defaultWarnLimit
	}
	return s.data.WarnLimit
}

func (s *Settings) WelcomeMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.WelcomeMessage
}

// RenderWelcome substitutes the {user} placeholder. Any other placeholder in
// the template passes through verbatim; rendering never fails.
func (s *Settings) RenderWelcome(userDisplay string) string {
	return strings.ReplaceAll(s.WelcomeMessage(), "{user}", userDisplay)
}

func (s *Settings) SetWarnLimit(limit int) error {
	if limit < 1 {
		return fmt.Errorf("warn limit must be positive, got %d", limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.WarnLimit = limit
	return s.persistLocked()
}

func (s *Settings) SetWelcomeMessage(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.WelcomeMessage = message
	return s.persistLocked()
}

// Describe renders the current settings for /settings.
func (s *Settings) Describe() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("warn_limit: %d\nwelcome_message: %s", s.data.WarnLimit, s.data.WelcomeMessage)
}

func (s *Settings) persistLocked() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}
