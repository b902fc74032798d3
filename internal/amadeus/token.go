package amadeus

import (
	"sync"
	"time"
)

const (
	// Refresh when within this window of expiry so a token never dies mid-call.
	tokenBuffer        = 60 * time.Second
	defaultTokenExpiry = 1800 * time.Second
)

// TokenCache holds the bearer token between calls. It is owned by the client
// it is injected into rather than living in package state.
type TokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenCache() *TokenCache {
	return &TokenCache{}
}

// Get returns the cached token if it is still outside the refresh buffer.
func (c *TokenCache) Get(now time.Time) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" || !c.expiresAt.Add(-tokenBuffer).After(now) {
		return "", false
	}
	return c.token, true
}

// Set stores a freshly obtained token. A zero expiresIn falls back to the
// documented default lifetime.
func (c *TokenCache) Set(token string, expiresIn time.Duration, now time.Time) {
	if expiresIn <= 0 {
		expiresIn = defaultTokenExpiry
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expiresAt = now.Add(expiresIn)
}
