package service

import (
	"time"

	"cyrusbot/client"
	"cyrusbot/moderation"
	"cyrusbot/store"
)

const (
	botName     = "Cyrus Security Bot"
	botUsername = "@Cyrus_Security_bot"
)

// Deps is the application state built at startup and threaded through every
// handler. No handler reaches for package-level stores; tests construct a
// fresh Deps per case.
type Deps struct {
	Words      *store.WordStore
	Chats      *store.ChatRegistry
	Settings   *store.Settings
	Ignores    *store.IgnoreList
	Warns      store.WarnStore
	Violations *store.ViolationLog

	// Archive is nil unless archive_provider is configured.
	Archive client.ArchiveClient

	Engine *moderation.Engine
}

var (
	commandsFunc = make(map[string]func(c *CommandConfig))
	startTime    = time.Now()
)
