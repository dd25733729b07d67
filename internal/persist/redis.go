package persist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type RedisSlot struct {
	rdb *goredis.Client
}

func NewRedisSlot(ctx context.Context, addr string) (*RedisSlot, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisSlot{rdb: rdb}, nil
}

func (r *RedisSlot) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrSlotEmpty
	}
	return data, err
}

func (r *RedisSlot) Write(ctx context.Context, key string, data []byte) error {
	return r.rdb.Set(ctx, key, data, 0).Err()
}

func (r *RedisSlot) Close() error {
	return r.rdb.Close()
}
