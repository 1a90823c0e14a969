package service

import (
	"fmt"
	"strconv"
	"time"

	"cyrusbot/config"
	"cyrusbot/store"
	"cyrusbot/util"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (c *CommandConfig) startCommand() {
	c.messageConfig.Text = util.StrBuilder(
		"👋 Hello! I am ", botName, " (", botUsername, ").\n",
		"I keep this group clean & safe from spam and abuse.\n",
		"Type /help to see my commands.")
	c.sendMessage()
}

func (c *CommandConfig) helpCommand() {
	help := util.StrBuilder(
		botName, " Help\n",
		"Bot username: ", botUsername, "\n\n",
		"User Commands:\n",
		"/help — Show this help message\n",
		"/checkabuse <word> — Check if a word is blacklisted\n",
		"/appeal <text> — Send appeal to the group owner\n",
		"/report <msg-link> — Report a message\n",
		"/stats <user_id> — Show user warning stats\n",
		"/status — Show bot health\n",
		"/settings — Show bot configuration\n")
	if c.isPrivileged(c.update.Message.From.ID) {
		help = util.StrBuilder(help,
			"\nAdmin/Owner Commands:\n",
			"/addabuse <word> — Add word to blacklist\n",
			"/removeabuse <word> — Remove word from blacklist\n",
			"/listabuse — Show blacklist\n",
			"/ignore <user_id> — Ignore user for checks\n",
			"/unignore <user_id> — Remove ignore on user\n",
			"/ignoreword <word> — Ignore a word from blacklist\n",
			"/unignoreword <word> — Remove ignore from word\n",
			"/setlimit <n> — Set the warning threshold\n",
			"/setwelcome <text> — Set the welcome message\n",
			"/backup — Owner only: Download blacklist file\n",
			"/restore — Owner only: Restore blacklist (reply to file)\n",
			"/getlog — Owner only: Download mod log\n",
			"/broadcast <text> — Owner only: Broadcast to all known chats\n")
	}
	c.messageConfig.Text = help
	c.sendMessage()
}

func (c *CommandConfig) checkAbuseCommand() {
	if !c.requireArg("/checkabuse <word>") {
		return
	}
	word := store.NormalizeWord(c.commandArg)
	if c.deps.Words.Contains(word) {
		c.messageConfig.Text = util.StrBuilder("'", word, "' is blacklisted.")
	} else {
		c.messageConfig.Text = util.StrBuilder("'", word, "' is not blacklisted.")
	}
	c.sendMessage()
}

func (c *CommandConfig) appealCommand() {
	c.forwardToOwnerCommand("/appeal <text>", "📨 Appeal from")
}

func (c *CommandConfig) reportCommand() {
	c.forwardToOwnerCommand("/report <msg-link>", "🚨 Report from")
}

// forwardToOwnerCommand relays the caller's text to the owner and confirms.
func (c *CommandConfig) forwardToOwnerCommand(usage, prefix string) {
	if !c.requireArg(usage) {
		return
	}
	from := c.update.Message.From
	text := fmt.Sprintf("%s %s (id %d) in chat %d:\n%s",
		prefix, from.FirstName, from.ID, c.update.Message.Chat.ID, c.commandArg)
	if _, err := c.bot.Send(tgbotapi.NewMessage(config.Conf.OwnerID, text)); err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Could not reach the owner, try again later."
	} else {
		c.messageConfig.Text = "Sent to the owner."
	}
	c.sendMessage()
}

func (c *CommandConfig) addAbuseCommand() {
	c.mustAdmin = true
	if !c.isApproveCommandRule() {
		return
	}
	if !c.requireArg("/addabuse <word>") {
		return
	}
	word := store.NormalizeWord(c.commandArg)
	added, err := c.deps.Words.Add(word)
	switch {
	case err != nil:
		logrus.Error(err)
		c.messageConfig.Text = util.StrBuilder("'", word, "' was added but saving the blacklist failed.")
	case added:
		c.messageConfig.Text = util.StrBuilder("'", word, "' added to abuse blacklist.")
	default:
		c.messageConfig.Text = util.StrBuilder("'", word, "' is already blacklisted.")
	}
	c.sendMessage()
}

func (c *CommandConfig) removeAbuseCommand() {
	c.mustAdmin = true
	if !c.isApproveCommandRule() {
		return
	}
	if !c.requireArg("/removeabuse <word>") {
		return
	}
	word := store.NormalizeWord(c.commandArg)
	removed, err := c.deps.Words.Remove(word)
	switch {
	case err != nil:
		logrus.Error(err)
		c.messageConfig.Text = util.StrBuilder("'", word, "' was removed but saving the blacklist failed.")
	case removed:
		c.messageConfig.Text = util.StrBuilder("'", word, "' removed from abuse blacklist.")
	default:
		c.messageConfig.Text = util.StrBuilder("'", word, "' is not blacklisted.")
	}
	c.sendMessage()
}

func (c *CommandConfig) listAbuseCommand() {
	c.mustAdmin = true
	if !c.isApproveCommandRule() {
		return
	}
	if c.deps.Words.Len() == 0 {
		c.messageConfig.Text = "The blacklist is empty."
	} else {
		c.messageConfig.Text = util.StrBuilder("Blacklisted words:\n", c.deps.Words.ExportText())
	}
	c.sendMessage()
}

func (c *CommandConfig) ignoreCommand() {
	c.mustAdmin = true
	if !c.isApproveCommandRule() {
		return
	}
	if !c.requireArg("/ignore <user_id>") {
		return
	}
	userID, err := strconv.ParseInt(c.commandArg, 10, 64)
	if err != nil {
		c.messageConfig.Text = "Usage: /ignore <user_id>"
		c.sendMessage()
		return
	}
	c.deps.Ignores.IgnoreUser(userID)
	c.messageConfig.Text = util.StrBuilder("User ", c.commandArg, " is now ignored.")
	c.sendMessage()
}

func (c *CommandConfig) unignoreCommand() {
	c.mustAdmin = true
	if !c.isApproveCommandRule() {
		return
	}
	if !c.requireArg("/unignore <user_id>") {
		return
	}
	userID, err := strconv.ParseInt(c.commandArg, 10, 64)
	if err != nil {
		c.messageConfig.Text = "Usage: /unignore <user_id>"
		c.sendMessage()
		return
	}
	if c.deps.Ignores.UnignoreUser(userID) {
		c.messageConfig.Text = util.StrBuilder("User ", c.commandArg, " is no longer ignored.")
	} else {
		c.messageConfig.Text = util.StrBuilder("User ", c.commandArg, " was not ignored.")
	}
	c.sendMessage()
}

func (c *CommandConfig) ignoreWordCommand() {
	c.mustAdmin = true
	if !c.isApproveCommandRule() {
		return
	}
	if !c.requireArg("/ignoreword <word>") {
		return
	}
	word := store.NormalizeWord(c.commandArg)
	c.deps.Ignores.IgnoreWord(word)
	c.messageConfig.Text = util.StrBuilder("'", word, "' is now ignored.")
	c.sendMessage()
}

func (c *CommandConfig) unignoreWordCommand() {
	c.mustAdmin = true
	if !c.isApproveCommandRule() {
		return
	}
	if !c.requireArg("/unignoreword <word>") {
		return
	}
	word := store.NormalizeWord(c.commandArg)
	if c.deps.Ignores.UnignoreWord(word) {
		c.messageConfig.Text = util.StrBuilder("'", word, "' is no longer ignored.")
	} else {
		c.messageConfig.Text = util.StrBuilder("'", word, "' was not ignored.")
	}
	c.sendMessage()
}

func (c *CommandConfig) setLimitCommand() {
	c.mustAdmin = true
	if !c.isApproveCommandRule() {
		return
	}
	if !c.requireArg("/setlimit <n>") {
		return
	}
	limit, err := strconv.Atoi(c.commandArg)
	if err != nil || limit < 1 {
		c.messageConfig.Text = "Usage: /setlimit <positive number>"
		c.sendMessage()
		return
	}
	if err := c.deps.Settings.SetWarnLimit(limit); err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Saving settings failed."
	} else {
		c.messageConfig.Text = util.StrBuilder("Warning limit set to ", c.commandArg, ".")
	}
	c.sendMessage()
}

func (c *CommandConfig) setWelcomeCommand() {
	c.mustAdmin = true
	if !c.isApproveCommandRule() {
		return
	}
	if !c.requireArg("/setwelcome <text, {user} is replaced>") {
		return
	}
	if err := c.deps.Settings.SetWelcomeMessage(c.commandArg); err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Saving settings failed."
	} else {
		c.messageConfig.Text = "Welcome message updated."
	}
	c.sendMessage()
}

func (c *CommandConfig) statsCommand() {
	userID := c.update.Message.From.ID
	if c.commandArg != "" {
		id, err := strconv.ParseInt(c.commandArg, 10, 64)
		if err != nil {
			c.messageConfig.Text = "Usage: /stats <user_id>"
			c.sendMessage()
			return
		}
		userID = id
	}
	count, err := c.deps.Warns.Count(c.ctx, userID)
	if err != nil {
		logrus.Error(err)
		c.messageConfig.Text = "Warning stats are unavailable right now."
		c.sendMessage()
		return
	}
	text := fmt.Sprintf("Warnings for %d: %d/%d", userID, count, c.deps.Settings.WarnLimit())
	if c.deps.Archive != nil {
		if violations, err := c.deps.Archive.SearchViolations(userID); err == nil {
			text = fmt.Sprintf("%s\nArchived violations: %d", text, len(violations))
		} else {
			logrus.Error(err)
		}
	}
	c.messageConfig.Text = text
	c.sendMessage()
}

func (c *CommandConfig) statusCommand() {
	c.messageConfig.Text = fmt.Sprintf(
		"%s is up.\nUptime: %s\nBlacklist words: %d\nKnown chats: %d\nRecent violations: %d",
		botName,
		time.Since(startTime).Round(time.Second),
		c.deps.Words.Len(),
		c.deps.Chats.Len(),
		c.deps.Violations.Len(),
	)
	c.sendMessage()
}

func (c *CommandConfig) settingsCommand() {
	c.messageConfig.Text = c.deps.Settings.Describe()
	c.sendMessage()
}
