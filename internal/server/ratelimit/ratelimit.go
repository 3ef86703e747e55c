// Package ratelimit provides per-client request rate limiting using a token
// bucket per client and endpoint.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// bucket is a token bucket refilling at a steady rate.
type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes one token if available, reporting the remaining count and
// when the bucket will be full again.
func (b *bucket) allow() (ok bool, remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		ok = true
	}

	resetTime = now
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return ok, int(b.tokens), resetTime
}

// Info reports rate limit status for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration. ResearchLimit applies to the
// research endpoints per window; everything else uses DefaultLimit. The
// health endpoint is never limited.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	ResearchLimit int
	ResearchBurst int
	ResearchWin   time.Duration
}

// LoadConfig reads rate limiting configuration from the environment.
func LoadConfig() *Config {
	return &Config{
		Enabled:       getEnvBool("RATE_LIMIT_ENABLED", true),
		DefaultLimit:  getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow: time.Minute,
		ResearchLimit: getEnvInt("RATE_LIMIT_RESEARCH_LIMIT", 30),
		ResearchBurst: getEnvInt("RATE_LIMIT_RESEARCH_BURST", 5),
		ResearchWin:   time.Hour,
	}
}

// Limiter manages token buckets for all clients.
type Limiter struct {
	config  *Config
	buckets map[string]*bucket
	mu      sync.Mutex
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	return &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}
}

// Allow checks whether a request from clientID to the given path is within
// its limit.
func (l *Limiter) Allow(clientID, path string) (bool, Info) {
	if !l.config.Enabled || path == "/health" {
		return true, Info{Allowed: true}
	}

	limit := l.config.DefaultLimit
	burst := l.config.DefaultLimit
	window := l.config.DefaultWindow
	if path == "/research" || path == "/research/stream" {
		limit = l.config.ResearchLimit
		burst = l.config.ResearchBurst
		window = l.config.ResearchWin
	}

	b := l.getBucket(clientID+":"+path, limit, burst, window)
	ok, remaining, resetTime := b.allow()

	info := Info{
		Allowed:   ok,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !ok {
		info.RetryAfter = max(time.Until(resetTime), 0)
	}
	return ok, info
}

func (l *Limiter) getBucket(key string, limit, burst int, window time.Duration) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	if burst <= 0 {
		burst = limit
	}
	b := newBucket(burst, float64(limit)/window.Seconds())
	l.buckets[key] = b
	return b
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
