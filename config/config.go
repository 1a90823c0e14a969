// Package config loads bot configuration from the JSON file named by the
// BOT_CONFIG environment variable.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path"
	"runtime"

	"cyrusbot/util"

	"github.com/sirupsen/logrus"
)

type Webhook struct {
	Endpoint    string `json:"endpoint"`
	CertFile    string `json:"cert_file"`
	CertKeyFile string `json:"cert_key_file"`
	ListenAddr  string `json:"listen_addr"`
	Token       string `json:"token"`
}

type Config struct {
	BotToken    string  `json:"bot_token"`
	OwnerID     int64   `json:"owner_id"`
	DataDir     string  `json:"data_dir"`
	LogLevel    uint8   `json:"log_level"`
	UpdatesType string  `json:"updates_type"`
	Webhook     Webhook `json:"webhook"`

	// Matcher selects the blacklist matching strategy: "scan" (default)
	// or "ahocorasick".
	Matcher string `json:"matcher"`
	// MatchMode is "substring" (default, matches words embedded in larger
	// words) or "token" (whole whitespace tokens only).
	MatchMode string `json:"match_mode"`

	// PersistWarnings keeps warning counts in redis so they survive a
	// restart. Off by default: a restart then resets all counts.
	PersistWarnings bool   `json:"persist_warnings"`
	RedisHost       string `json:"redis_host"`

	// ArchiveProvider optionally mirrors the violation log into a
	// queryable store: "es", "mongo" or "mysql". Empty disables it.
	ArchiveProvider string `json:"archive_provider"`
	ArchiveURL      string `json:"archive_url"`
}

var Conf Config

// Load reads BOT_CONFIG, fills Conf and configures logrus. Call once at
// startup before constructing anything else.
func Load() error {
	configPath := os.Getenv("BOT_CONFIG")
	if configPath == "" {
		return errors.New("BOT_CONFIG environment variable is required")
	}
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, &Conf); err != nil {
		return err
	}
	if Conf.BotToken == "" {
		return errors.New("bot_token is required")
	}
	if Conf.OwnerID == 0 {
		return errors.New("owner_id is required")
	}
	if Conf.DataDir == "" {
		Conf.DataDir = "."
	}
	if Conf.PersistWarnings && Conf.RedisHost == "" {
		return errors.New("persist_warnings requires redis_host")
	}

	switch {
	case Conf.LogLevel >= 3:
		logrus.SetLevel(logrus.DebugLevel)
	case Conf.LogLevel == 2:
		logrus.SetLevel(logrus.InfoLevel)
	case Conf.LogLevel == 1:
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.ErrorLevel)
	}
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			fileName := path.Base(frame.File)
			return frame.Function, fileName
		},
	})

	logrus.Infof("config:%v", util.LogMarshal(Conf))
	return nil
}
