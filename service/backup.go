package service

import (
	"time"

	"cyrusbot/config"
	"cyrusbot/store"
	"cyrusbot/util"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// RunAutoBackup sends the owner a blacklist snapshot every midnight UTC.
// Run as a goroutine; it never returns. ExportText takes the store's lock,
// so the snapshot is consistent with concurrent add/remove commands.
func RunAutoBackup(bot *tgbotapi.BotAPI, words *store.WordStore) {
	logrus.Info("auto_backup scheduled")
	for {
		now := time.Now().UTC()
		next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
		time.Sleep(next.Sub(now))

		doc := tgbotapi.NewDocument(config.Conf.OwnerID, tgbotapi.FileBytes{
			Name:  "autobackup_abusive_words.txt",
			Bytes: []byte(words.ExportText()),
		})
		doc.Caption = util.StrBuilder("Daily backup by ", botName)
		if _, err := bot.Send(doc); err != nil {
			logrus.Errorf("auto backup: %v", err)
		} else {
			logrus.Info("auto backup sent")
		}
	}
}
