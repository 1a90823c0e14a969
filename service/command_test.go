package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func commandUpdate(text string) tgbotapi.Update {
	commandLen := len(text)
	for i, r := range text {
		if r == ' ' {
			commandLen = i
			break
		}
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			Chat:      &tgbotapi.Chat{ID: -100},
			From:      &tgbotapi.User{ID: 7},
			Text:      text,
			Entities: []tgbotapi.MessageEntity{{
				Type:   "bot_command",
				Offset: 0,
				Length: commandLen,
			}},
		},
	}
}

func TestNewCommandConfigParsing(t *testing.T) {
	cases := []struct {
		text    string
		command string
		arg     string
	}{
		{"/addabuse word", "addabuse", "word"},
		{"/addabuse@Cyrus_Security_bot word", "addabuse", "word"},
		{"/listabuse", "listabuse", ""},
		{"/broadcast hello to  everyone", "broadcast", "hello to  everyone"},
		{"/setlimit   5", "setlimit", "5"},
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, tc := range cases {
		bc := NewBotConfig(ctx, cancel, nil, commandUpdate(tc.text), nil)
		c := NewCommandConfig(ctx, bc)
		if c.command != tc.command {
			t.Errorf("%q: command = %q, want %q", tc.text, c.command, tc.command)
		}
		if c.commandArg != tc.arg {
			t.Errorf("%q: arg = %q, want %q", tc.text, c.commandArg, tc.arg)
		}
	}
}

func TestBroadcastAllCollectsFailures(t *testing.T) {
	var delivered []int64
	failed := broadcastAll([]int64{1, 2, 3}, func(chatID int64) error {
		if chatID == 2 {
			return errors.New("blocked")
		}
		delivered = append(delivered, chatID)
		return nil
	})
	if !reflect.DeepEqual(failed, []string{"2"}) {
		t.Errorf("failed = %v, want [2]", failed)
	}
	if !reflect.DeepEqual(delivered, []int64{1, 3}) {
		t.Errorf("delivered = %v, want [1 3]", delivered)
	}
}

func TestBroadcastAllNoFailures(t *testing.T) {
	failed := broadcastAll([]int64{1, 2}, func(int64) error { return nil })
	if failed != nil {
		t.Errorf("failed = %v, want nil", failed)
	}
}
