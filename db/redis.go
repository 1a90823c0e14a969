package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Connect opens a redis client and verifies the server is reachable.
// Redis is optional here (only the warning store uses it), so this is an
// explicit constructor rather than package init.
func Connect(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		PoolSize: 10,
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
