package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupThrottler(t *testing.T, opts Options) (*RedisThrottler, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := NewRedisClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisThrottler(client, opts).(*RedisThrottler), mr
}

func TestRedisThrottler(t *testing.T) {
	ctx := context.Background()

	t.Run("limita tentativas por janela", func(t *testing.T) {
		th, mr := setupThrottler(t, Options{Limit: 2, Window: time.Minute, LockThreshold: 10, LockTTL: time.Minute})

		for i := 0; i < 2; i++ {
			ok, err := th.Allow(ctx, "alice")
			require.NoError(t, err)
			assert.True(t, ok)
		}
		ok, err := th.Allow(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, ok)

		mr.FastForward(time.Minute + time.Second)
		ok, err = th.Allow(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("bloqueia após falhas seguidas", func(t *testing.T) {
		th, mr := setupThrottler(t, Options{Limit: 100, Window: time.Minute, LockThreshold: 3, LockTTL: 15 * time.Minute})

		for i := 0; i < 3; i++ {
			require.NoError(t, th.RegisterFailure(ctx, "bob"))
		}
		assert.True(t, mr.Exists("login:lock:bob"))

		ok, err := th.Allow(ctx, "bob")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = th.Allow(ctx, "carol")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("reset limpa contadores e bloqueio", func(t *testing.T) {
		th, mr := setupThrottler(t, Options{Limit: 100, Window: time.Minute, LockThreshold: 1, LockTTL: time.Minute})

		require.NoError(t, th.RegisterFailure(ctx, "bob"))
		require.NoError(t, th.Reset(ctx, "bob"))
		assert.False(t, mr.Exists("login:lock:bob"))

		ok, err := th.Allow(ctx, "bob")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestNoopThrottler(t *testing.T) {
	th := NewNoopThrottler()
	ok, err := th.Allow(context.Background(), "x")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, th.RegisterFailure(context.Background(), "x"))
}
