package kvstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/config"
	"github.com/BruksfildServices01/gestao-dashboard/internal/db"
)

// Open builds the backend named by cfg.Driver. Network and SQL backends
// get the ccache layer when CacheSize > 0.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Driver {
	case "memory":
		return NewMemory(), nil
	case "bolt":
		store, err = OpenBolt(cfg.BoltPath)
	case "redis":
		store, err = OpenRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case "postgres", "mysql":
		gdb, dbErr := db.NewDB(cfg.Driver, cfg.DSN)
		if dbErr != nil {
			return nil, dbErr
		}
		store = NewSQL(gdb)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheSize > 0 && cfg.Driver != "bolt" {
		zap.S().Infof("store cache enabled: size=%d ttl=%s", cfg.CacheSize, cfg.CacheTTL)
		store = NewCached(store, cfg.CacheSize, cfg.CacheTTL)
	}

	return store, nil
}
