package trivia

import (
	"sync"
	"time"
)

// topScoresTTL bounds how stale a cached leaderboard read may be. Score
// writes do not invalidate entries; a fresh submission shows up once the
// user's entry expires.
const topScoresTTL = 5 * time.Minute

type cacheEntry struct {
	entries   []ScoreEntry
	expiresAt time.Time
}

// scoreCache memoizes TopScores results per user id with lazy expiry.
type scoreCache struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	byUser map[uint]cacheEntry
}

func newScoreCache(ttl time.Duration) *scoreCache {
	return &scoreCache{
		ttl:    ttl,
		now:    time.Now,
		byUser: make(map[uint]cacheEntry),
	}
}

func (c *scoreCache) get(userID uint) ([]ScoreEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.byUser[userID]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.byUser, userID)
		return nil, false
	}
	// Cached slice is shared state; callers treat it as read-only.
	return entry.entries, true
}

func (c *scoreCache) set(userID uint, entries []ScoreEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byUser[userID] = cacheEntry{entries: entries, expiresAt: c.now().Add(c.ttl)}
}
