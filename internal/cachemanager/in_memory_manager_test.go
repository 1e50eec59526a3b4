package cachemanager

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInMemoryCacheManager_GetMiss(t *testing.T) {
	c := NewInMemoryCacheManager[string, int]("test", NoExpiration, 0)
	_, ok := c.Get("absent")
	require.False(t, ok)
}

func TestInMemoryCacheManager_SetAndGet(t *testing.T) {
	c := NewInMemoryCacheManager[string, string]("test", NoExpiration, 0)
	c.Set("k", "v", NoExpiration)

	v, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)
}

func TestInMemoryCacheManager_Expiration(t *testing.T) {
	c := NewInMemoryCacheManager[string, int]("test", time.Millisecond, 0)
	c.Set("k", 1, time.Millisecond)

	require.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestInMemoryCacheManager_GetOrLoad(t *testing.T) {
	c := NewInMemoryCacheManager[string, int]("test", NoExpiration, 0)

	loads := 0
	load := func(key string) (int, error) {
		loads++
		return len(key), nil
	}

	v, err := c.GetOrLoad("four", NoExpiration, load)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	v, err = c.GetOrLoad("four", NoExpiration, load)
	require.NoError(t, err)
	require.Equal(t, 4, v)
	require.Equal(t, 1, loads, "second call is served from cache")
}

func TestInMemoryCacheManager_GetOrLoadErrorNotCached(t *testing.T) {
	c := NewInMemoryCacheManager[string, int]("test", NoExpiration, 0)

	calls := 0
	load := func(string) (int, error) {
		calls++
		return 0, errors.New("boom")
	}

	_, err := c.GetOrLoad("k", NoExpiration, load)
	require.Error(t, err)
	_, err = c.GetOrLoad("k", NoExpiration, load)
	require.Error(t, err)
	require.Equal(t, 2, calls, "errors are retried, not cached")
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	c := NewInMemoryCacheManager[string, int]("test", NoExpiration, 0)
	c.Set("a", 1, NoExpiration)
	c.Set("b", 2, NoExpiration)
	require.Equal(t, 2, c.ItemCount())

	c.Delete("a")
	_, ok := c.Get("a")
	require.False(t, ok)

	c.Flush()
	require.Equal(t, 0, c.ItemCount())
}
