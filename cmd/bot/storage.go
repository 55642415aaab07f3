package main

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/customs-bot/internal/clients/cache"
	"max.ks1230/customs-bot/internal/config"
	"max.ks1230/customs-bot/internal/entity/user"
	"max.ks1230/customs-bot/internal/logger"
	"max.ks1230/customs-bot/internal/model/storage"
)

type sessionStorage interface {
	GetSession(ctx context.Context, userID int64) (user.Session, error)
	SaveSession(ctx context.Context, userID int64, session user.Session) error
	DropSession(ctx context.Context, userID int64) error
}

func newSessionStorage(ctx context.Context, cfg *config.StorageConfig) (sessionStorage, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return storage.NewInMemStorage(cfg.SessionTTL()), nil
	case config.BackendMemcached:
		return cache.NewMemcache(&cfg.Memcached, cfg.SessionTTL())
	case config.BackendRedis:
		return storage.NewRedisStorage(ctx, &cfg.Redis, cfg.SessionTTL())
	}
	return nil, errors.Errorf("unknown session storage backend %q", cfg.Backend)
}

// closeSessionStorage releases backends holding a connection pool.
func closeSessionStorage(sessions sessionStorage) {
	closer, ok := sessions.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Error("failed to close session storage", zap.Error(err))
	}
}
