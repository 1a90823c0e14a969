// Package moderation implements the warn/ban decision taken on every
// incoming group text message.
package moderation

import (
	"context"
	"time"

	"cyrusbot/model"
	"cyrusbot/store"
	"cyrusbot/util"

	"github.com/sirupsen/logrus"
)

// Outcome is what a single engine step decided.
type Outcome int

const (
	SkippedIgnoredUser Outcome = iota
	SkippedIgnoredWord
	SkippedClean
	WarnedBelowLimit
	WarnedAndBanned
)

func (o Outcome) String() string {
	switch o {
	case SkippedIgnoredUser:
		return "skipped_ignored_user"
	case SkippedIgnoredWord:
		return "skipped_ignored_word"
	case SkippedClean:
		return "skipped_clean"
	case WarnedBelowLimit:
		return "warned_below_limit"
	case WarnedAndBanned:
		return "warned_and_banned"
	}
	return "unknown"
}

// Mention marks a user reference in an outgoing message so the platform can
// attach a text_mention entity.
type Mention struct {
	UserID int64
	Offset int
	Length int
}

// Platform is the host-platform seam. Every call is best-effort: the engine
// logs failures and keeps going, one broken API call must never stall the
// message stream.
type Platform interface {
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	BanMember(ctx context.Context, chatID, userID int64) error
	SendMessage(ctx context.Context, chatID int64, text string, mention *Mention) error
}

// Message is the slice of an incoming update the engine cares about.
type Message struct {
	ChatID    int64
	MessageID int
	UserID    int64
	FirstName string
	Username  string
	Text      string
}

// Result is the unit tests assert on: the outcome plus the count after the
// step.
type Result struct {
	Outcome Outcome
	Count   int
}

// Engine evaluates messages against the blacklist and runs the per-user
// warn/ban state machine. A user whose count reached the limit stays
// matched and counted; the ban request is simply re-issued, which the
// platform rejects for an already-banned member.
type Engine struct {
	words      *store.WordStore
	ignores    *store.IgnoreList
	warns      store.WarnStore
	settings   *store.Settings
	violations *store.ViolationLog
	platform   Platform
}

func NewEngine(words *store.WordStore, ignores *store.IgnoreList, warns store.WarnStore,
	settings *store.Settings, violations *store.ViolationLog, platform Platform) *Engine {
	return &Engine{
		words:      words,
		ignores:    ignores,
		warns:      warns,
		settings:   settings,
		violations: violations,
		platform:   platform,
	}
}

// Check runs one moderation step for msg.
func (e *Engine) Check(ctx context.Context, msg Message) Result {
	if e.ignores.IsIgnoredUser(msg.UserID) {
		return Result{Outcome: SkippedIgnoredUser}
	}
	if e.ignores.HasIgnoredWord(store.NormalizeText(msg.Text)) {
		return Result{Outcome: SkippedIgnoredWord}
	}
	if !e.words.ContainsMatch(msg.Text, e.ignores) {
		return Result{Outcome: SkippedClean}
	}

	if err := e.platform.DeleteMessage(ctx, msg.ChatID, msg.MessageID); err != nil {
		logrus.Warnf("delete message %v in chat %v: %v", msg.MessageID, msg.ChatID, err)
	}

	count, err := e.warns.Incr(ctx, msg.UserID)
	if err != nil {
		logrus.Errorf("increment warnings for %v: %v", msg.UserID, err)
	}

	e.violations.Append(model.Violation{
		Time:     time.Now().UTC(),
		UserID:   msg.UserID,
		Username: msg.Username,
		Reason:   model.ReasonAbuse,
		Detail:   msg.Text,
	})

	limit := e.settings.WarnLimit()
	warnText := util.StrBuilder("⚠️ ", msg.FirstName,
		", your message was deleted for abusive language. Warning ",
		util.NumToStr(count), "/", util.NumToStr(limit), ".")
	if err := e.platform.SendMessage(ctx, msg.ChatID, warnText, &Mention{
		UserID: msg.UserID,
		Offset: 3,
		Length: util.TGNameWidth(msg.FirstName),
	}); err != nil {
		logrus.Warnf("send warning in chat %v: %v", msg.ChatID, err)
	}

	if err == nil && count >= limit {
		if err := e.platform.BanMember(ctx, msg.ChatID, msg.UserID); err != nil {
			logrus.Warnf("ban %v in chat %v: %v", msg.UserID, msg.ChatID, err)
		}
		banText := util.StrBuilder(msg.FirstName, " has been banned for repeated rule violations.")
		if err := e.platform.SendMessage(ctx, msg.ChatID, banText, &Mention{
			UserID: msg.UserID,
			Offset: 0,
			Length: util.TGNameWidth(msg.FirstName),
		}); err != nil {
			logrus.Warnf("send ban notice in chat %v: %v", msg.ChatID, err)
		}
		return Result{Outcome: WarnedAndBanned, Count: count}
	}
	return Result{Outcome: WarnedBelowLimit, Count: count}
}
