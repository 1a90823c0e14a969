package service

import (
	"net/http"
	"strings"
	"time"

	"cyrusbot/client"
	"cyrusbot/config"
	"cyrusbot/util"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (c *CommandConfig) backupCommand() {
	c.mustOwner = true
	if !c.isApproveCommandRule() {
		return
	}
	doc := tgbotapi.NewDocument(c.update.Message.Chat.ID, tgbotapi.FileBytes{
		Name:  "abusive_words.txt",
		Bytes: []byte(c.deps.Words.ExportText()),
	})
	doc.Caption = util.StrBuilder("Blacklist backup by ", botName)
	if _, err := c.bot.Send(doc); err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Sending the backup failed."
		c.sendMessage()
	}
}

func (c *CommandConfig) restoreCommand() {
	c.mustOwner = true
	if !c.isApproveCommandRule() {
		return
	}
	reply := c.update.Message.ReplyToMessage
	if reply == nil || reply.Document == nil {
		c.messageConfig.Text = "Reply to the blacklist file with /restore."
		c.sendMessage()
		return
	}
	file, err := c.bot.GetFile(tgbotapi.FileConfig{FileID: reply.Document.FileID})
	if err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Could not fetch the uploaded file."
		c.sendMessage()
		return
	}
	fileReq := client.NewRequest(file.Link(config.Conf.BotToken), http.MethodGet)
	fileReq.TimeOut = time.Second * 30
	content, err := fileReq.Do()
	if err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Could not download the uploaded file."
		c.sendMessage()
		return
	}
	if err := c.deps.Words.ImportText(string(content)); err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Blacklist restored in memory but saving it failed."
	} else {
		c.messageConfig.Text = util.StrBuilder("Blacklist restored, ",
			util.NumToStr(c.deps.Words.Len()), " words.")
	}
	c.sendMessage()
}

func (c *CommandConfig) getLogCommand() {
	c.mustOwner = true
	if !c.isApproveCommandRule() {
		return
	}
	content, err := c.deps.Violations.ExportFullText()
	if err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Reading the violation log failed."
		c.sendMessage()
		return
	}
	if content == "" {
		c.messageConfig.Text = "The violation log is empty."
		c.sendMessage()
		return
	}
	doc := tgbotapi.NewDocument(c.update.Message.Chat.ID, tgbotapi.FileBytes{
		Name:  "logs.txt",
		Bytes: []byte(content),
	})
	if _, err := c.bot.Send(doc); err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Sending the log failed."
		c.sendMessage()
	}
}

func (c *CommandConfig) broadcastCommand() {
	c.mustOwner = true
	if !c.isApproveCommandRule() {
		return
	}
	if !c.requireArg("/broadcast <message>") {
		return
	}
	text := util.StrBuilder("📢 [", botName, " Broadcast]\n\n", c.commandArg)
	failed := broadcastAll(c.deps.Chats.All(), func(chatID int64) error {
		_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
		return err
	})
	if len(failed) == 0 {
		c.messageConfig.Text = "Broadcast sent to all known chats!"
	} else {
		c.messageConfig.Text = util.StrBuilder("Broadcast sent, but failed for: ", strings.Join(failed, ", "))
	}
	c.sendMessage()
}

// broadcastAll fans text out to every chat, collecting the ids that failed
// instead of aborting the batch on the first error.
func broadcastAll(chats []int64, send func(chatID int64) error) []string {
	var failed []string
	for _, chatID := range chats {
		if err := send(chatID); err != nil {
			logrus.Warnf("broadcast to %v: %v", chatID, err)
			failed = append(failed, util.NumToStr(chatID))
		}
	}
	return failed
}
