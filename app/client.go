package app

import (
	"net/http"
	"os"

	"cyrusbot/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Client interface {
	Channel() tgbotapi.UpdatesChannel
	GetBot() *tgbotapi.BotAPI
}

type Polling struct {
	bot *tgbotapi.BotAPI
}

func NewPolling(bot *tgbotapi.BotAPI) *Polling {
	return &Polling{bot: bot}
}

type Webhook struct {
	bot *tgbotapi.BotAPI
}

func NewWebhook(bot *tgbotapi.BotAPI) *Webhook {
	return &Webhook{bot: bot}
}

func (c Polling) Channel() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := c.bot.GetUpdatesChan(u)
	return updates
}

func (c Polling) GetBot() *tgbotapi.BotAPI {
	return c.bot
}

func (c Webhook) Channel() tgbotapi.UpdatesChannel {
	if err := c.setWebhook(); err != nil {
		logrus.Panic(err)
	}
	updates := c.bot.ListenForWebhook("/" + config.Conf.Webhook.Token)
	go func() {
		wh := config.Conf.Webhook
		var err error
		if wh.CertFile != "" && wh.CertKeyFile != "" {
			err = http.ListenAndServeTLS(wh.ListenAddr, wh.CertFile, wh.CertKeyFile, nil)
		} else {
			err = http.ListenAndServe(wh.ListenAddr, nil)
		}
		if err != nil {
			logrus.Error(err)
		}
	}()
	return updates
}

func (c Webhook) GetBot() *tgbotapi.BotAPI {
	return c.bot
}

func (c Webhook) setWebhook() error {
	link := config.Conf.Webhook.Endpoint + config.Conf.Webhook.Token
	var wh tgbotapi.WebhookConfig
	var err error
	if config.Conf.Webhook.CertFile != "" {
		certFile, err := os.ReadFile(config.Conf.Webhook.CertFile)
		if err != nil {
			return err
		}
		cert := tgbotapi.FileBytes{
			Name:  "certificate",
			Bytes: certFile,
		}
		wh, err = tgbotapi.NewWebhookWithCert(link, cert)
		if err != nil {
			return err
		}
	} else {
		wh, err = tgbotapi.NewWebhook(link)
		if err != nil {
			return err
		}
	}
	if _, err = c.bot.Request(wh); err != nil {
		return err
	}
	info, err := c.bot.GetWebhookInfo()
	if err != nil {
		return err
	}
	logrus.Infof("webhook_info:%+v", info)
	return nil
}
