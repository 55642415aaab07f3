package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/customs-bot/internal/entity/user"
	"max.ks1230/customs-bot/internal/logger"
)

const (
	defaultBase   = 10
	sessionPrefix = "session:"
)

type config interface {
	Hosts() []string
}

// MemcacheClient keeps dialogue sessions in memcached.
type MemcacheClient struct {
	client *memcache.Client
	ttl    time.Duration
}

func NewMemcache(config config, ttl time.Duration) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, ttl: ttl}, mc.Ping()
}

func formatKey(userID int64) string {
	return sessionPrefix + strconv.FormatInt(userID, defaultBase)
}

func (mc *MemcacheClient) GetSession(_ context.Context, userID int64) (user.Session, error) {
	item, err := mc.client.Get(formatKey(userID))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return user.Session{}, nil
	}
	if err != nil {
		return user.Session{}, errors.Wrap(err, "get session")
	}

	var session user.Session
	if err = json.Unmarshal(item.Value, &session); err != nil {
		return user.Session{}, errors.Wrap(err, "unmarshal session")
	}
	return session, nil
}

func (mc *MemcacheClient) SaveSession(_ context.Context, userID int64, session user.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}
	return errors.Wrap(mc.client.Set(&memcache.Item{
		Key:        formatKey(userID),
		Value:      data,
		Expiration: int32(mc.ttl.Seconds()),
	}), "save session")
}

func (mc *MemcacheClient) DropSession(_ context.Context, userID int64) error {
	logger.Debug("drop session", zap.Int64("userID", userID))
	err := mc.client.Delete(formatKey(userID))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return errors.Wrap(err, "drop session")
	}
	return nil
}
