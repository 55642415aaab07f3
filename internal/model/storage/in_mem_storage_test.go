package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/customs-bot/internal/entity/user"
)

func Test_InMemStorage_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage(time.Hour)

	empty, err := s.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.False(t, empty.InProgress())

	saved := user.Session{Step: user.StepCurrency, PurchasePrice: "15000"}
	require.NoError(t, s.SaveSession(ctx, 1, saved))

	got, err := s.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	other, err := s.GetSession(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, user.Session{}, other)

	require.NoError(t, s.DropSession(ctx, 1))
	got, err = s.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, user.Session{}, got)
}

func Test_InMemStorage_ExpiresSessionsAfterTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	s := NewInMemStorage(30 * time.Minute)
	s.clock = func() time.Time { return now }

	saved := user.Session{Step: user.StepHorsepower, EngineVolume: 1.6}
	require.NoError(t, s.SaveSession(ctx, 1, saved))

	now = now.Add(29 * time.Minute)
	got, err := s.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	now = now.Add(time.Minute)
	got, err = s.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, user.Session{}, got)
	assert.Empty(t, s.sessions)
}

func Test_InMemStorage_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	s := NewInMemStorage(0)
	s.clock = func() time.Time { return now }

	saved := user.Session{Step: user.StepCurrency}
	require.NoError(t, s.SaveSession(ctx, 1, saved))

	now = now.AddDate(1, 0, 0)
	got, err := s.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}
