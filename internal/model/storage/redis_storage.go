package storage

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"max.ks1230/customs-bot/internal/entity/user"
)

type redisConfig interface {
	Addr() string
	Password() string
	Database() int
}

type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStorage(ctx context.Context, config redisConfig, ttl time.Duration) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr(),
		Password: config.Password(),
		DB:       config.Database(),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to redis")
	}
	return &RedisStorage{client: client, ttl: ttl}, nil
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}

func (s *RedisStorage) GetSession(ctx context.Context, userID int64) (user.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return user.Session{}, nil
	}
	if err != nil {
		return user.Session{}, errors.Wrap(err, "get session")
	}

	var session user.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return user.Session{}, errors.Wrap(err, "unmarshal session")
	}
	return session, nil
}

func (s *RedisStorage) SaveSession(ctx context.Context, userID int64, session user.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}
	return errors.Wrap(s.client.Set(ctx, sessionKey(userID), data, s.ttl).Err(), "save session")
}

func (s *RedisStorage) DropSession(ctx context.Context, userID int64) error {
	return errors.Wrap(s.client.Del(ctx, sessionKey(userID)).Err(), "drop session")
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}
