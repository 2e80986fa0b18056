package cache

import (
	"time"

	"github.com/careerbrew/careerbrew-api/internal/matching"
	"github.com/careerbrew/careerbrew-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
)

// SessionStore holds in-flight match sequences keyed by mentee user ID.
// Each sequence is one ranked snapshot; it is never re-validated against the
// store mid-session (the store is the final authority on writes). Idle
// sessions are evicted after the TTL, which also bounds memory.
type SessionStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewSessionStore creates a session store with the given idle TTL in seconds
func NewSessionStore(ttlSeconds int) *SessionStore {
	ttl := time.Duration(ttlSeconds) * time.Second
	return &SessionStore{
		cache: gocache.New(ttl, cacheCheckPeriod),
		ttl:   ttl,
	}
}

// Put stores a sequence for a mentee, replacing any previous session
func (ss *SessionStore) Put(menteeID string, seq *matching.Sequence) {
	ss.cache.Set(menteeID, seq, ss.ttl)
	metrics.CacheSize.WithLabelValues("match_sessions").Set(float64(ss.cache.ItemCount()))
}

// Get returns the mentee's active sequence, refreshing its TTL on access
func (ss *SessionStore) Get(menteeID string) (*matching.Sequence, bool) {
	data, found := ss.cache.Get(menteeID)
	if !found {
		metrics.CacheMisses.WithLabelValues("match_sessions").Inc()
		return nil, false
	}

	seq, ok := data.(*matching.Sequence)
	if !ok {
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("match_sessions").Inc()
	ss.cache.Set(menteeID, seq, ss.ttl)
	return seq, true
}

// Delete removes the mentee's session
func (ss *SessionStore) Delete(menteeID string) {
	ss.cache.Delete(menteeID)
}
