package moderation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cyrusbot/store"

	"github.com/stretchr/testify/require"
)

type fakePlatform struct {
	deleted []int
	banned  []int64
	sent    []string
	failAll bool
}

func (p *fakePlatform) DeleteMessage(_ context.Context, _ int64, messageID int) error {
	if p.failAll {
		return errors.New("platform down")
	}
	p.deleted = append(p.deleted, messageID)
	return nil
}

func (p *fakePlatform) BanMember(_ context.Context, _ int64, userID int64) error {
	if p.failAll {
		return errors.New("platform down")
	}
	p.banned = append(p.banned, userID)
	return nil
}

func (p *fakePlatform) SendMessage(_ context.Context, _ int64, text string, _ *Mention) error {
	if p.failAll {
		return errors.New("platform down")
	}
	p.sent = append(p.sent, text)
	return nil
}

func newTestEngine(t *testing.T, blacklist string) (*Engine, *fakePlatform, *store.IgnoreList) {
	t.Helper()
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "blacklist.txt")
	require.NoError(t, os.WriteFile(wordsPath, []byte(blacklist), 0o644))
	words, err := store.NewWordStore(wordsPath, store.MatcherScan, store.MatchModeSubstring)
	require.NoError(t, err)

	platform := &fakePlatform{}
	ignores := store.NewIgnoreList()
	engine := NewEngine(
		words,
		ignores,
		store.NewMemoryWarnStore(),
		store.NewSettings(filepath.Join(dir, "config.json")),
		store.NewViolationLog(filepath.Join(dir, "logs.txt"), nil),
		platform,
	)
	return engine, platform, ignores
}

func abuseMessage(messageID int, text string) Message {
	return Message{
		ChatID:    -100,
		MessageID: messageID,
		UserID:    7,
		FirstName: "Eve",
		Username:  "eve",
		Text:      text,
	}
}

func TestCheckCleanMessage(t *testing.T) {
	engine, platform, _ := newTestEngine(t, "bc")
	res := engine.Check(context.Background(), abuseMessage(1, "have a nice day"))
	require.Equal(t, SkippedClean, res.Outcome)
	require.Zero(t, res.Count)
	require.Empty(t, platform.deleted)
	require.Empty(t, platform.sent)
}

func TestCheckObfuscatedMatch(t *testing.T) {
	engine, platform, _ := newTestEngine(t, "bc")
	res := engine.Check(context.Background(), abuseMessage(5, "you are a b-c person"))
	require.Equal(t, WarnedBelowLimit, res.Outcome)
	require.Equal(t, 1, res.Count)
	require.Equal(t, []int{5}, platform.deleted)
	require.Len(t, platform.sent, 1)
	require.Contains(t, platform.sent[0], "1/3")
	require.Empty(t, platform.banned)
}

func TestCheckIgnoredUser(t *testing.T) {
	engine, platform, ignores := newTestEngine(t, "bc")
	ignores.IgnoreUser(7)
	res := engine.Check(context.Background(), abuseMessage(1, "bc"))
	require.Equal(t, SkippedIgnoredUser, res.Outcome)
	require.Empty(t, platform.deleted)
}

func TestCheckIgnoredWord(t *testing.T) {
	engine, platform, ignores := newTestEngine(t, "bc")
	ignores.IgnoreWord("person")
	res := engine.Check(context.Background(), abuseMessage(1, "bc person"))
	require.Equal(t, SkippedIgnoredWord, res.Outcome)
	require.Empty(t, platform.deleted)
}

func TestThresholdBansOnThird(t *testing.T) {
	engine, platform, _ := newTestEngine(t, "bc")
	ctx := context.Background()

	res := engine.Check(ctx, abuseMessage(1, "bc"))
	require.Equal(t, WarnedBelowLimit, res.Outcome)
	require.Equal(t, 1, res.Count)

	res = engine.Check(ctx, abuseMessage(2, "bc"))
	require.Equal(t, WarnedBelowLimit, res.Outcome)
	require.Equal(t, 2, res.Count)
	require.Empty(t, platform.banned)

	res = engine.Check(ctx, abuseMessage(3, "bc"))
	require.Equal(t, WarnedAndBanned, res.Outcome)
	require.Equal(t, 3, res.Count)
	require.Equal(t, []int64{7}, platform.banned)

	var banNotices int
	for _, text := range platform.sent {
		if strings.Contains(text, "banned") {
			banNotices++
		}
	}
	require.Equal(t, 1, banNotices)
}

func TestBanReissuedPastLimit(t *testing.T) {
	engine, platform, _ := newTestEngine(t, "bc")
	ctx := context.Background()
	for i := 1; i <= 4; i++ {
		engine.Check(ctx, abuseMessage(i, "bc"))
	}
	require.Equal(t, []int64{7, 7}, platform.banned)
}

func TestPlatformFailureStillCounts(t *testing.T) {
	engine, platform, _ := newTestEngine(t, "bc")
	platform.failAll = true
	ctx := context.Background()

	res := engine.Check(ctx, abuseMessage(1, "bc"))
	require.Equal(t, WarnedBelowLimit, res.Outcome)
	require.Equal(t, 1, res.Count)

	platform.failAll = false
	res = engine.Check(ctx, abuseMessage(2, "bc"))
	require.Equal(t, 2, res.Count)
}
