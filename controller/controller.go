package controller

import (
	"context"

	"cyrusbot/moderation"
	"cyrusbot/service"
	"cyrusbot/util"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Controller routes one update: register the chat, then dispatch to the
// command layer, the welcome handler or the moderation engine.
func Controller(ctx context.Context, cancel context.CancelFunc, bot *tgbotapi.BotAPI, update tgbotapi.Update, deps *service.Deps) {
	logrus.DebugFn(util.LogMarshalFn(update))
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}
	if deps.Chats.Register(msg.Chat.ID) {
		logrus.Infof("new chat=%v", msg.Chat.ID)
	}
	c := service.NewBotConfig(ctx, cancel, bot, update, deps)
	switch {
	case msg.IsCommand():
		service.NewCommandConfig(ctx, c).InCommands()
	case len(msg.NewChatMembers) > 0:
		c.WelcomeNewMembers()
	case msg.Text != "" && !msg.Chat.IsPrivate():
		res := deps.Engine.Check(ctx, moderation.Message{
			ChatID:    msg.Chat.ID,
			MessageID: msg.MessageID,
			UserID:    msg.From.ID,
			FirstName: msg.From.FirstName,
			Username:  msg.From.UserName,
			Text:      msg.Text,
		})
		logrus.Debugf("moderation user=%v outcome=%v count=%v", msg.From.ID, res.Outcome, res.Count)
	}
}
