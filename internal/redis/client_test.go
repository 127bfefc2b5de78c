package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClientTalksToServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "greeting", "hello", 0).Err())
	mr.CheckGet(t, "greeting", "hello")

	err = client.Get(ctx, "missing").Err()
	assert.ErrorIs(t, err, redis.Nil)
}
