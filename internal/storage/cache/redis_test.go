package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/survey-manager/survey-backend/config"
)

func TestNewClient(t *testing.T) {
	t.Run("connects", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := NewClient(context.Background(), &config.CacheConfig{Addr: mr.Addr(), PoolSize: 2})
		require.NoError(t, err)
		defer client.Close()

		require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		got, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("requires password when server has one", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mr.RequireAuth("hunter2")

		_, err := NewClient(context.Background(), &config.CacheConfig{Addr: mr.Addr()})
		require.Error(t, err)

		client, err := NewClient(context.Background(), &config.CacheConfig{Addr: mr.Addr(), Password: "hunter2"})
		require.NoError(t, err)
		client.Close()
	})
}
