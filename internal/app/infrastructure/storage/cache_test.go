package storage

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache[int](16, 0, false, false, "", 0)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	assert.Len(t, c.Items(), 2)

	c.ClearKey("a")
	_, ok = c.Get("a")
	assert.False(t, ok)

	c.ClearAll()
	assert.Empty(t, c.Items())
}

func TestCache_PersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := NewCache[string](16, 0, true, true, path, 0)
	c.Set("k", "v")
	c.Close()

	_, err := os.Stat(path)
	require.NoError(t, err)

	reloaded := NewCache[string](16, 0, true, true, path, 0)
	defer reloaded.Close()

	v, ok := reloaded.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
