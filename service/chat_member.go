package service

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// WelcomeNewMembers greets each joining member with the configured welcome
// template. The {user} placeholder becomes a clickable mention.
func (c *BotConfig) WelcomeNewMembers() {
	for _, user := range c.update.Message.NewChatMembers {
		logrus.Infof("new_user:%v", user.ID)
		text := c.deps.Settings.RenderWelcome(mentionHTML(user))
		msg := tgbotapi.NewMessage(c.update.Message.Chat.ID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := c.bot.Send(msg); err != nil {
			logrus.Error(err)
		}
	}
}

func mentionHTML(user tgbotapi.User) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, user.ID, html.EscapeString(user.FirstName))
}
