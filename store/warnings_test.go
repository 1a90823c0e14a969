package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestMemoryWarnStoreMonotonic(t *testing.T) {
	s := NewMemoryWarnStore()
	ctx := context.Background()

	count, err := s.Count(ctx, 1)
	if err != nil || count != 0 {
		t.Fatalf("fresh count = %d, err %v", count, err)
	}
	for want := 1; want <= 5; want++ {
		got, err := s.Incr(ctx, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("after %d violations count = %d", want, got)
		}
	}
	if count, _ := s.Count(ctx, 2); count != 0 {
		t.Errorf("unrelated user count = %d, want 0", count)
	}
}

func newTestRedisWarnStore(t *testing.T) *RedisWarnStore {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Fatalf("starting miniredis: %v", err)
	}
	t.Cleanup(srv.Close)
	return NewRedisWarnStore(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
}

func TestRedisWarnStore(t *testing.T) {
	s := newTestRedisWarnStore(t)
	ctx := context.Background()

	count, err := s.Count(ctx, 9)
	if err != nil || count != 0 {
		t.Fatalf("fresh count = %d, err %v", count, err)
	}
	for want := 1; want <= 3; want++ {
		got, err := s.Incr(ctx, 9)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("after %d violations count = %d", want, got)
		}
	}
	count, err = s.Count(ctx, 9)
	if err != nil || count != 3 {
		t.Errorf("count = %d, err %v, want 3", count, err)
	}
}
