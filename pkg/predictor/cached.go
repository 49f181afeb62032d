package predictor

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/health-triage-server/internal/domain"
)

// CacheStats tracks hit rates across the cache tiers.
type CacheStats struct {
	MemoryHits   int64 `json:"memory_hits"`
	RedisHits    int64 `json:"redis_hits"`
	Misses       int64 `json:"misses"`
	Evictions    int64 `json:"evictions"`
	UpstreamErrs int64 `json:"upstream_errors"`
}

type memoryEntry struct {
	prediction *domain.Prediction
	expiresAt  time.Time
}

type redisEntry struct {
	Prediction *domain.Prediction `json:"prediction"`
	CachedAt   time.Time          `json:"cached_at"`
}

// CachedPredictor layers an in-process LRU and an optional Redis tier in
// front of the classifier client. Identical symptom sets are served from
// cache; the upstream is only consulted on a full miss. Safe for
// concurrent use.
type CachedPredictor struct {
	upstream domain.Predictor
	memory   *lru.Cache[string, memoryEntry]
	redis    *redis.Client
	logger   *logrus.Logger

	memoryTTL time.Duration
	redisTTL  time.Duration

	mu    sync.Mutex
	stats CacheStats
}

// NewCachedPredictor creates the layered cache. redisClient may be nil,
// leaving only the memory tier active.
func NewCachedPredictor(upstream domain.Predictor, cfg domain.CacheConfig, redisClient *redis.Client, logger *logrus.Logger) (*CachedPredictor, error) {
	size := cfg.MaxMemorySize
	if size <= 0 {
		size = 1024
	}
	memory, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}
	return &CachedPredictor{
		upstream:  upstream,
		memory:    memory,
		redis:     redisClient,
		logger:    logger,
		memoryTTL: cfg.MemoryTTL,
		redisTTL:  cfg.DefaultTTL,
	}, nil
}

// Predict checks memory, then Redis, then the upstream classifier.
// Successful upstream results populate both tiers.
func (p *CachedPredictor) Predict(ctx context.Context, symptoms []string) (*domain.Prediction, error) {
	key := cacheKey(symptoms)

	if entry, ok := p.memory.Get(key); ok {
		if time.Now().Before(entry.expiresAt) {
			p.recordMemoryHit()
			return entry.prediction, nil
		}
		p.memory.Remove(key)
		p.recordEviction()
	}

	if p.redis != nil {
		if prediction, found := p.getRedis(ctx, key); found {
			p.recordRedisHit()
			p.memory.Add(key, memoryEntry{prediction: prediction, expiresAt: time.Now().Add(p.memoryTTL)})
			return prediction, nil
		}
	}

	p.recordMiss()
	prediction, err := p.upstream.Predict(ctx, symptoms)
	if err != nil {
		p.recordUpstreamErr()
		return nil, err
	}

	p.memory.Add(key, memoryEntry{prediction: prediction, expiresAt: time.Now().Add(p.memoryTTL)})
	if p.redis != nil {
		p.setRedis(ctx, key, prediction)
	}
	return prediction, nil
}

// Symptoms delegates to the upstream; the vocabulary is small and stable
// enough that it does not justify a cache tier of its own.
func (p *CachedPredictor) Symptoms(ctx context.Context) ([]string, error) {
	return p.upstream.Symptoms(ctx)
}

// Stats returns a snapshot of the cache counters plus the current memory
// tier occupancy.
func (p *CachedPredictor) Stats() (CacheStats, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats, p.memory.Len()
}

func (p *CachedPredictor) getRedis(ctx context.Context, key string) (*domain.Prediction, bool) {
	val, err := p.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		p.logger.WithError(err).Debug("Redis cache read failed")
		return nil, false
	}
	var entry redisEntry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		p.redis.Del(ctx, key)
		return nil, false
	}
	return entry.Prediction, entry.Prediction != nil
}

func (p *CachedPredictor) setRedis(ctx context.Context, key string, prediction *domain.Prediction) {
	entry := redisEntry{Prediction: prediction, CachedAt: time.Now()}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := p.redis.Set(ctx, key, data, p.redisTTL).Err(); err != nil {
		p.logger.WithError(err).Debug("Redis cache write failed")
	}
}

func (p *CachedPredictor) recordMemoryHit()   { p.mu.Lock(); p.stats.MemoryHits++; p.mu.Unlock() }
func (p *CachedPredictor) recordRedisHit()    { p.mu.Lock(); p.stats.RedisHits++; p.mu.Unlock() }
func (p *CachedPredictor) recordMiss()        { p.mu.Lock(); p.stats.Misses++; p.mu.Unlock() }
func (p *CachedPredictor) recordEviction()    { p.mu.Lock(); p.stats.Evictions++; p.mu.Unlock() }
func (p *CachedPredictor) recordUpstreamErr() { p.mu.Lock(); p.stats.UpstreamErrs++; p.mu.Unlock() }

// cacheKey hashes the sorted symptom set so equivalent requests share an
// entry regardless of input ordering upstream of normalization.
func cacheKey(symptoms []string) string {
	joined := strings.Join(symptoms, ",")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("prediction:%x", hash[:8])
}
