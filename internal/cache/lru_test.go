package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantLoader(calls *int32) LoaderFunc[string, string] {
	return func(_ context.Context, key string) (string, error) {
		atomic.AddInt32(calls, 1)
		return "value_" + key, nil
	}
}

func TestLRU_Miss(t *testing.T) {
	var calls int32
	c, err := NewLRU(4, constantLoader(&calls))
	require.NoError(t, err)

	v, err := c.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, "value_key", v)
	assert.Equal(t, int32(1), calls)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_Hit(t *testing.T) {
	var calls int32
	c, err := NewLRU(4, constantLoader(&calls))
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "key")
	require.NoError(t, err)

	v, err := c.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, "value_key", v)
	assert.Equal(t, int32(1), calls, "a hit must not call the loader")
}

func TestLRU_KeyStoredWhileLoading(t *testing.T) {
	var c *LRU[string, string]
	loader := func(ctx context.Context, key string) (string, error) {
		c.entries.Add(key, "stored")
		return "loaded", nil
	}

	c, err := NewLRU(4, loader)
	require.NoError(t, err)

	v, err := c.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, "stored", v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_LoaderErrorNotCached(t *testing.T) {
	fail := true
	loader := func(_ context.Context, key string) (string, error) {
		if fail {
			return "", assert.AnError
		}
		return "ok", nil
	}

	c, err := NewLRU(4, loader)
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "key")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, c.Len())

	fail = false
	v, err := c.Get(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestLRU_Eviction(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		expected []string
	}{
		{
			name:     "fits",
			keys:     []string{"key1", "key2", "key3", "key4"},
			expected: []string{"key1", "key2", "key3", "key4"},
		},
		{
			name:     "evicts oldest",
			keys:     []string{"key1", "key2", "key3", "key4", "key5"},
			expected: []string{"key2", "key3", "key4", "key5"},
		},
		{
			name:     "evicts several",
			keys:     []string{"key1", "key2", "key3", "key4", "key5", "key6", "key7", "key8", "key9"},
			expected: []string{"key6", "key7", "key8", "key9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			c, err := NewLRU(4, constantLoader(&calls))
			require.NoError(t, err)

			for _, k := range tt.keys {
				_, err := c.Get(context.Background(), k)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.expected, c.Keys())
			assert.Equal(t, len(tt.expected), c.Len())
		})
	}
}

func TestLRU_HitPromotes(t *testing.T) {
	var calls int32
	c, err := NewLRU(4, constantLoader(&calls))
	require.NoError(t, err)

	ctx := context.Background()
	for _, k := range []string{"key1", "key2", "key3", "key4"} {
		_, err := c.Get(ctx, k)
		require.NoError(t, err)
	}

	_, err = c.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, []string{"key2", "key3", "key4", "key1"}, c.Keys())

	_, err = c.Get(ctx, "key5")
	require.NoError(t, err)
	assert.Equal(t, []string{"key3", "key4", "key1", "key5"}, c.Keys())
}

func TestLRU_Concurrent(t *testing.T) {
	var calls int32
	c, err := NewLRU(8, constantLoader(&calls))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", i%4)
			v, err := c.Get(context.Background(), key)
			assert.NoError(t, err)
			assert.Equal(t, "value_"+key, v)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, c.Len())
}

func TestNewLRU_InvalidSize(t *testing.T) {
	_, err := NewLRU(0, constantLoader(new(int32)))
	assert.Error(t, err)
}
