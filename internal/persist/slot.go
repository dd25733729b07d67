// Package persist keeps the store state in a keyed slot so it survives
// restarts. A slot holds one encoded snapshot per key; backends range from a
// local file to a SQL table or a Redis key.
package persist

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/saulo-duarte/memento/internal/config"
)

var ErrSlotEmpty = errors.New("storage slot is empty")

type Slot interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Close() error
}

// Open builds the slot selected by the storage driver.
func Open(ctx context.Context, cfg *config.Config) (Slot, error) {
	switch cfg.Storage.Driver {
	case "file":
		return NewFileSlot(cfg.Storage.Dir)
	case "memory":
		return NewMemorySlot(), nil
	case "sqlite":
		dsn := cfg.Storage.DSN
		if dsn == "" {
			dsn = filepath.Join(cfg.Storage.Dir, "memento.db")
			if err := ensureDir(cfg.Storage.Dir); err != nil {
				return nil, err
			}
		}
		db, err := config.Connect(ctx, "sqlite", dsn)
		if err != nil {
			return nil, err
		}
		return NewGormSlot(db)
	case "postgres":
		if cfg.Storage.DSN == "" {
			return nil, errors.New("postgres storage requires storage.dsn")
		}
		db, err := config.Connect(ctx, "postgres", cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		return NewGormSlot(db)
	case "redis":
		return NewRedisSlot(ctx, cfg.Storage.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
