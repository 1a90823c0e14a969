package store

import (
	"context"
	"errors"
	"time"

	"cyrusbot/util"

	"github.com/go-redis/redis/v8"
)

const (
	warnKeyDir     = "bot:warn_data:"
	redisOpTimeout = time.Second * 5
)

// RedisWarnStore keeps warning counts in redis so they survive restarts.
// Selected by the persist_warnings config flag.
type RedisWarnStore struct {
	rdb *redis.Client
}

func NewRedisWarnStore(rdb *redis.Client) *RedisWarnStore {
	return &RedisWarnStore{rdb: rdb}
}

func (s *RedisWarnStore) Incr(ctx context.Context, userID int64) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	count, err := s.rdb.Incr(ctx, warnKeyDir+util.NumToStr(userID)).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *RedisWarnStore) Count(ctx context.Context, userID int64) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	count, err := s.rdb.Get(ctx, warnKeyDir+util.NumToStr(userID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
