package app

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cyrusbot/config"
	"cyrusbot/controller"
	"cyrusbot/moderation"
	"cyrusbot/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// RunBot connects to the Bot API and processes updates until the process
// dies. deps carries the stores built in main; the engine is wired here
// because it needs the live bot client.
func RunBot(deps *service.Deps) {
	bot, err := tgbotapi.NewBotAPIWithClient(config.Conf.BotToken, tgbotapi.APIEndpoint, &http.Client{
		Timeout: time.Second * 30,
	})
	if err != nil {
		logrus.Panic(err)
	}
	bot.Debug = false
	logrus.Infof("bot=%v", bot.Self.UserName)

	deps.Engine = moderation.NewEngine(deps.Words, deps.Ignores, deps.Warns,
		deps.Settings, deps.Violations, service.NewTelegramPlatform(bot))

	go service.RunAutoBackup(bot, deps.Words)

	switch config.Conf.UpdatesType {
	case "webhook":
		logrus.Info("updates_type=webhook")
		updatesHandler(NewWebhook(bot), deps)
	default:
		logrus.Info("updates_type=polling")
		updatesHandler(NewPolling(bot), deps)
	}
}

// updatesHandler fans updates out to one goroutine per chat so everything in
// a chat is handled in order while chats stay independent.
func updatesHandler(client Client, deps *service.Deps) {
	for update := range client.Channel() {
		if update.Message != nil {
			if _chatCh, ok := chatMap.Load(update.Message.Chat.ID); ok {
				if chatCh, _ok := _chatCh.(chatChannel); _ok {
					chatCh <- update
					continue
				}
			}
			logrus.Infof("new chat_handler=%v", update.Message.Chat.ID)
			updateCh := make(chatChannel, 10)
			chatMap.Store(update.Message.Chat.ID, updateCh)
			go chatHandler(updateCh, client.GetBot(), deps)
			updateCh <- update
		}
	}
}

var chatMap sync.Map

type chatChannel chan tgbotapi.Update

func chatHandler(ch chatChannel, bot *tgbotapi.BotAPI, deps *service.Deps) {
	var chatID int64
	var ttl int64 = 600
	for {
		select {
		case update := <-ch:
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			controller.Controller(ctx, cancel, bot, update, deps)
			chatID = update.Message.Chat.ID
			if update.Message.Chat.Type == "private" {
				ttl = 60
			} else {
				ttl = 600
			}
		case <-time.After(time.Second * time.Duration(ttl)):
			logrus.Infof("close chat_handler=%v", chatID)
			chatMap.Delete(chatID)
			close(ch)
			return
		}
	}
}
