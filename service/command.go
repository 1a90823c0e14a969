package service

import (
	"context"
	"strings"

	"cyrusbot/util"

	"github.com/sirupsen/logrus"
)

type CommandConfig struct {
	*BotConfig
	ctx        context.Context
	command    string
	commandArg string
	mustAdmin  bool
	mustOwner  bool
}

func NewCommandConfig(ctx context.Context, botConfig *BotConfig) *CommandConfig {
	return &CommandConfig{
		ctx:        ctx,
		BotConfig:  botConfig,
		command:    botConfig.update.Message.Command(),
		commandArg: strings.TrimSpace(botConfig.update.Message.CommandArguments()),
	}
}

func (c *CommandConfig) InCommands() {
	if fn, ok := commandsFunc[c.command]; ok {
		logrus.Infof("command_user=%v command=%s command_arg=%s", c.update.Message.From.ID, c.command, c.commandArg)
		fn(c)
	}
}

// isApproveCommandRule enforces the command's auth flags. Failing the check
// replies to the caller and aborts with no state touched.
func (c *CommandConfig) isApproveCommandRule() bool {
	from := c.update.Message.From
	if c.mustOwner && !c.isOwner(from.ID) {
		c.messageConfig.Text = util.StrBuilder("Only the owner can use /", c.command, ".")
		c.sendMessage()
		return false
	}
	if c.mustAdmin && !c.isPrivileged(from.ID) {
		c.messageConfig.Text = "Only admins or the owner can use this command."
		c.sendMessage()
		return false
	}
	return true
}

// requireArg replies with a usage hint when the command argument is missing.
func (c *CommandConfig) requireArg(usage string) bool {
	if c.commandArg == "" {
		c.messageConfig.Text = util.StrBuilder("Usage: ", usage)
		c.sendMessage()
		return false
	}
	return true
}

func init() {
	defer func() {
		for i := range commandsFunc {
			logrus.Infof("registr_command=%v", i)
		}
	}()
	commandsFunc["start"] = func(c *CommandConfig) {
		c.startCommand()
	}
	commandsFunc["help"] = func(c *CommandConfig) {
		c.helpCommand()
	}
	commandsFunc["checkabuse"] = func(c *CommandConfig) {
		c.checkAbuseCommand()
	}
	commandsFunc["appeal"] = func(c *CommandConfig) {
		c.appealCommand()
	}
	commandsFunc["report"] = func(c *CommandConfig) {
		c.reportCommand()
	}
	commandsFunc["addabuse"] = func(c *CommandConfig) {
		c.addAbuseCommand()
	}
	commandsFunc["removeabuse"] = func(c *CommandConfig) {
		c.removeAbuseCommand()
	}
	commandsFunc["listabuse"] = func(c *CommandConfig) {
		c.listAbuseCommand()
	}
	commandsFunc["ignore"] = func(c *CommandConfig) {
		c.ignoreCommand()
	}
	commandsFunc["unignore"] = func(c *CommandConfig) {
		c.unignoreCommand()
	}
	commandsFunc["ignoreword"] = func(c *CommandConfig) {
		c.ignoreWordCommand()
	}
	commandsFunc["unignoreword"] = func(c *CommandConfig) {
		c.unignoreWordCommand()
	}
	commandsFunc["setlimit"] = func(c *CommandConfig) {
		c.setLimitCommand()
	}
	commandsFunc["setwelcome"] = func(c *CommandConfig) {
		c.setWelcomeCommand()
	}
	commandsFunc["stats"] = func(c *CommandConfig) {
		c.statsCommand()
	}
	commandsFunc["status"] = func(c *CommandConfig) {
		c.statusCommand()
	}
	commandsFunc["settings"] = func(c *CommandConfig) {
		c.settingsCommand()
	}
	commandsFunc["backup"] = func(c *CommandConfig) {
		c.backupCommand()
	}
	commandsFunc["restore"] = func(c *CommandConfig) {
		c.restoreCommand()
	}
	commandsFunc["getlog"] = func(c *CommandConfig) {
		c.getLogCommand()
	}
	commandsFunc["broadcast"] = func(c *CommandConfig) {
		c.broadcastCommand()
	}
}
