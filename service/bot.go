package service

import (
	"context"

	"cyrusbot/config"
	"cyrusbot/util"

	"github.com/bitly/go-simplejson"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	update        tgbotapi.Update
	bot           *tgbotapi.BotAPI
	deps          *Deps
	messageConfig tgbotapi.MessageConfig
	ctx           context.Context
	cancel        context.CancelFunc
}

func NewBotConfig(ctx context.Context, cancel context.CancelFunc, bot *tgbotapi.BotAPI, update tgbotapi.Update, deps *Deps) *BotConfig {
	botConfig := &BotConfig{
		ctx:    ctx,
		cancel: cancel,
		update: update,
		bot:    bot,
		deps:   deps,
		messageConfig: tgbotapi.MessageConfig{
			BaseChat: tgbotapi.BaseChat{
				ChatID:           update.Message.Chat.ID,
				ReplyToMessageID: update.Message.MessageID,
			},
			Entities: []tgbotapi.MessageEntity{},
		},
	}
	return botConfig
}

func (c *BotConfig) sendMessage() {
	msg := c.messageConfig
	if _, err := c.bot.Send(msg); err != nil {
		logrus.Error(err)
	}
	logrus.Debugf("send_msg:%v", util.LogMarshal(msg))
}

func (c *BotConfig) isOwner(userID int64) bool {
	return userID == config.Conf.OwnerID
}

// isAdmin asks the platform for the chat administrator list on every call
// and fails closed: if the lookup errors nobody passes.
func (c *BotConfig) isAdmin(userID int64) bool {
	req, err := c.bot.Request(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{
			ChatID: c.update.Message.Chat.ID,
		},
	})
	if err != nil {
		logrus.Error(err)
		return false
	}
	if !req.Ok {
		logrus.Errorln(req.ErrorCode, req.Description)
		return false
	}
	resJson, err := simplejson.NewJson(req.Result)
	if err != nil {
		logrus.Error(err)
		return false
	}
	chatAdministrators := resJson.MustArray()
	for i := range chatAdministrators {
		if resJson.GetIndex(i).Get("user").Get("id").MustInt64() == userID {
			return true
		}
	}
	return false
}

// isPrivileged is the uniform rule for admin commands: the fixed owner or a
// chat administrator/creator.
func (c *BotConfig) isPrivileged(userID int64) bool {
	return c.isOwner(userID) || c.isAdmin(userID)
}
