package service

import (
	"context"
	"fmt"

	"cyrusbot/moderation"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramPlatform is the moderation.Platform implementation backed by the
// Bot API. The HTTP client carries the request timeout, so the context is
// not wired through tgbotapi here.
type TelegramPlatform struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramPlatform(bot *tgbotapi.BotAPI) *TelegramPlatform {
	return &TelegramPlatform{bot: bot}
}

func (p *TelegramPlatform) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	req, err := p.bot.Request(tgbotapi.DeleteMessageConfig{
		ChatID:    chatID,
		MessageID: messageID,
	})
	return apiErr(req, err)
}

func (p *TelegramPlatform) BanMember(_ context.Context, chatID, userID int64) error {
	req, err := p.bot.Request(tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
	})
	return apiErr(req, err)
}

func (p *TelegramPlatform) SendMessage(_ context.Context, chatID int64, text string, mention *moderation.Mention) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if mention != nil {
		msg.Entities = []tgbotapi.MessageEntity{{
			Type:   "text_mention",
			Offset: mention.Offset,
			Length: mention.Length,
			User:   &tgbotapi.User{ID: mention.UserID},
		}}
	}
	_, err := p.bot.Send(msg)
	return err
}

func apiErr(req *tgbotapi.APIResponse, err error) error {
	if err != nil {
		return err
	}
	if req != nil && !req.Ok {
		return fmt.Errorf("api error %d: %s", req.ErrorCode, req.Description)
	}
	return nil
}
