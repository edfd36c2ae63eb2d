package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/nhohnhehr/pkg/adapters/redis"
	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/aretw0/nhohnhehr/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const program = "+--+\n|$@|\n|  |\n+--+\n"

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	ports.RunProgramStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	store, mr := newStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "short-lived", []byte(program)))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "short-lived")

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrProgramNotFound)

	// Pruning compares index scores against wall-clock time.
	time.Sleep(1200 * time.Millisecond)

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "hello", []byte(program)))

	assert.True(t, mr.Exists("custom:app:hello"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app#index"), "Expected index beside the custom prefix to exist")

	got, err := mr.Get("custom:app:hello")
	require.NoError(t, err)
	assert.Equal(t, program, got)
}

func TestRedisStore_DefaultPrefix(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, store.Save(context.Background(), "hello", []byte(program)))
	assert.True(t, mr.Exists(redis.DefaultPrefix+"hello"))
}

func TestRedisStore_IndexName(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "hello", []byte(program)))
	require.NoError(t, store.Save(ctx, "index", []byte(program)))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "index"}, names)

	got, err := mr.Get(redis.DefaultPrefix + "index")
	require.NoError(t, err)
	assert.Equal(t, program, got)

	t.Run("Prefix without separator", func(t *testing.T) {
		store, _ := newStore(t, redis.WithPrefix("app"))
		err := store.Save(ctx, "#index", []byte(program))
		assert.ErrorIs(t, err, redis.ErrReservedName)

		require.NoError(t, store.Save(ctx, "index", []byte(program)))
		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"index"}, names)
	})
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	_, err := store.Load(context.Background(), "hello")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProgramNotFound)
}
