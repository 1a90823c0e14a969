// cyrusbot is a group-moderation bot for Telegram. It deletes messages that
// match a persisted word blacklist, warns the author, and bans repeat
// offenders past a configurable threshold. Admins manage the blacklist and
// ignore exemptions in-chat; the owner gets backups, the violation log and
// broadcasts.
//
// Configuration comes from the JSON file named by the BOT_CONFIG environment
// variable; a .env file is loaded first if present.
package main

import (
	"path/filepath"

	"cyrusbot/app"
	"cyrusbot/client"
	"cyrusbot/config"
	"cyrusbot/db"
	"cyrusbot/service"
	"cyrusbot/store"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	blacklistFile  = "blacklist.txt"
	knownChatsFile = "known_chats.json"
	configFile     = "config.json"
	logFile        = "logs.txt"
)

func main() {
	_ = godotenv.Load()
	if err := config.Load(); err != nil {
		logrus.Fatalf("config: %v", err)
	}

	words, err := store.NewWordStore(
		filepath.Join(config.Conf.DataDir, blacklistFile),
		config.Conf.Matcher, config.Conf.MatchMode)
	if err != nil {
		logrus.Fatalf("blacklist: %v", err)
	}

	var archive client.ArchiveClient
	if config.Conf.ArchiveProvider != "" {
		provider, ok := client.Provider[config.Conf.ArchiveProvider]
		if !ok {
			logrus.Fatalf("unknown archive_provider %q", config.Conf.ArchiveProvider)
		}
		archive = provider(config.Conf.ArchiveURL)
	}

	var warns store.WarnStore = store.NewMemoryWarnStore()
	if config.Conf.PersistWarnings {
		rdb, err := db.Connect(config.Conf.RedisHost)
		if err != nil {
			logrus.Fatalf("redis: %v", err)
		}
		warns = store.NewRedisWarnStore(rdb)
	}

	deps := &service.Deps{
		Words:      words,
		Chats:      store.NewChatRegistry(filepath.Join(config.Conf.DataDir, knownChatsFile)),
		Settings:   store.NewSettings(filepath.Join(config.Conf.DataDir, configFile)),
		Ignores:    store.NewIgnoreList(),
		Warns:      warns,
		Violations: store.NewViolationLog(filepath.Join(config.Conf.DataDir, logFile), archive),
		Archive:    archive,
	}

	app.RunBot(deps)
}
