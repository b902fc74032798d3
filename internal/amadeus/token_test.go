package amadeus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCache(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty cache misses", func(t *testing.T) {
		c := NewTokenCache()
		_, ok := c.Get(now)
		assert.False(t, ok)
	})

	t.Run("fresh token hits", func(t *testing.T) {
		c := NewTokenCache()
		c.Set("tok", 30*time.Minute, now)

		token, ok := c.Get(now.Add(5 * time.Minute))
		require.True(t, ok)
		assert.Equal(t, "tok", token)
	})

	t.Run("misses inside the refresh buffer", func(t *testing.T) {
		c := NewTokenCache()
		c.Set("tok", 30*time.Minute, now)

		// 30s before expiry is within the 60s buffer.
		_, ok := c.Get(now.Add(30*time.Minute - 30*time.Second))
		assert.False(t, ok)

		// Just outside the buffer is still a hit.
		token, ok := c.Get(now.Add(30*time.Minute - 61*time.Second))
		require.True(t, ok)
		assert.Equal(t, "tok", token)
	})

	t.Run("zero expiry falls back to default lifetime", func(t *testing.T) {
		c := NewTokenCache()
		c.Set("tok", 0, now)

		_, ok := c.Get(now.Add(25 * time.Minute))
		assert.True(t, ok)

		_, ok = c.Get(now.Add(30 * time.Minute))
		assert.False(t, ok)
	})
}
