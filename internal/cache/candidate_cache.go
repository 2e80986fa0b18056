package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/careerbrew/careerbrew-api/internal/models"
	"github.com/careerbrew/careerbrew-api/pkg/logger"
	"github.com/careerbrew/careerbrew-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	candidatePoolKey = "candidates:active"
	cacheCheckPeriod = 10 * time.Second
)

// CandidateFetcher loads the active candidate pool from the store
type CandidateFetcher func(ctx context.Context) ([]*models.MentorCandidate, error)

// CandidateCache keeps the active+verified mentor pool in memory so a
// matching session does not hit the store on every swipe. Entries expire
// after the configured TTL; the next read fetches through.
type CandidateCache struct {
	cache   *gocache.Cache
	fetcher CandidateFetcher
	mu      sync.RWMutex
	ready   bool
	ttl     time.Duration
}

// NewCandidateCache creates a candidate cache with the given TTL in seconds
func NewCandidateCache(fetcher CandidateFetcher, ttlSeconds int) *CandidateCache {
	return &CandidateCache{
		cache:   gocache.New(time.Duration(ttlSeconds)*time.Second, cacheCheckPeriod),
		fetcher: fetcher,
		ttl:     time.Duration(ttlSeconds) * time.Second,
	}
}

// Initialize performs the initial pool fetch. Called during startup before
// accepting requests; failure here is fatal to the process.
func (cc *CandidateCache) Initialize(ctx context.Context) error {
	logger.Info("Initializing candidate cache...")
	start := time.Now()

	if _, err := cc.refresh(ctx); err != nil {
		logger.Error("Failed to initialize candidate cache", zap.Error(err))
		return err
	}

	cc.mu.Lock()
	cc.ready = true
	cc.mu.Unlock()

	logger.Info("Candidate cache initialized",
		zap.Duration("duration", time.Since(start)))
	return nil
}

// IsReady returns true once the cache has been populated at least once
func (cc *CandidateCache) IsReady() bool {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.ready
}

// Get returns the cached candidate pool, fetching through on expiry
func (cc *CandidateCache) Get(ctx context.Context) ([]*models.MentorCandidate, error) {
	if data, found := cc.cache.Get(candidatePoolKey); found {
		metrics.CacheHits.WithLabelValues("candidates").Inc()
		candidates, ok := data.([]*models.MentorCandidate)
		if !ok {
			return nil, fmt.Errorf("invalid candidate cache entry type")
		}
		return candidates, nil
	}

	metrics.CacheMisses.WithLabelValues("candidates").Inc()
	return cc.refresh(ctx)
}

// Invalidate drops the cached pool so the next read fetches fresh
func (cc *CandidateCache) Invalidate() {
	cc.cache.Delete(candidatePoolKey)
}

func (cc *CandidateCache) refresh(ctx context.Context) ([]*models.MentorCandidate, error) {
	candidates, err := cc.fetcher(ctx)
	if err != nil {
		return nil, err
	}

	cc.cache.Set(candidatePoolKey, candidates, cc.ttl)
	metrics.CacheSize.WithLabelValues("candidates").Set(float64(len(candidates)))

	logger.Debug("Candidate cache refreshed",
		zap.Int("candidates", len(candidates)))
	return candidates, nil
}
