package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/customs-bot/internal/entity/user"
)

type fakeRedisConfig struct {
	addr string
}

func (c fakeRedisConfig) Addr() string     { return c.addr }
func (c fakeRedisConfig) Password() string { return "" }
func (c fakeRedisConfig) Database() int    { return 0 }

func newTestRedisStorage(t *testing.T, ttl time.Duration) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	s, err := NewRedisStorage(context.Background(), fakeRedisConfig{addr: server.Addr()}, ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, server
}

func Test_RedisStorage_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s, server := newTestRedisStorage(t, time.Hour)

	empty, err := s.GetSession(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, user.Session{}, empty)

	saved := user.Session{
		Step:            user.StepImporterType,
		PurchasePrice:   "20000",
		Currency:        "USD",
		ManufactureDate: "2023-06-15",
		EngineVolume:    2.0,
		Horsepower:      150,
	}
	require.NoError(t, s.SaveSession(ctx, 7, saved))
	assert.True(t, server.Exists("session:7"))
	assert.Equal(t, time.Hour, server.TTL("session:7"))

	got, err := s.GetSession(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, s.DropSession(ctx, 7))
	got, err = s.GetSession(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, user.Session{}, got)
}

func Test_RedisStorage_ExpiredSessionIsEmpty(t *testing.T) {
	ctx := context.Background()
	s, server := newTestRedisStorage(t, 30*time.Minute)

	require.NoError(t, s.SaveSession(ctx, 7, user.Session{Step: user.StepCurrency}))
	server.FastForward(31 * time.Minute)

	got, err := s.GetSession(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, user.Session{}, got)
}

func Test_RedisStorage_BrokenPayload(t *testing.T) {
	ctx := context.Background()
	s, server := newTestRedisStorage(t, time.Hour)
	require.NoError(t, server.Set("session:7", "{not json"))

	_, err := s.GetSession(ctx, 7)

	assert.ErrorContains(t, err, "unmarshal session")
}

func Test_NewRedisStorage_FailsWithoutServer(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := NewRedisStorage(context.Background(), fakeRedisConfig{addr: addr}, time.Hour)

	assert.ErrorContains(t, err, "cannot connect to redis")
}
