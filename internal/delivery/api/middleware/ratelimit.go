package middleware

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"freelancer/config"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a token bucket per client IP. A budget of n requests per minute
// refills one token every 60/n seconds and allows bursts of n.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests per client IP.
func NewRateLimiter(perMinute int, idleTTL time.Duration) *RateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Allow consumes one token for key. When the bucket is empty it reports how long
// the client should wait.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.every, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	reservation := v.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	reservation.CancelAt(now)

	return false, delay
}

// Cleanup forgets clients idle for longer than the TTL.
func (l *RateLimiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idleTTL)
	removed := 0
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
			removed++
		}
	}

	return removed
}

// Run calls Cleanup every interval until ctx is done.
func (l *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}

// Handle rejects requests over budget with RATE_LIMITED and a Retry-After header.
func (l *RateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		allowed, wait := l.Allow(c.RealIP())
		if !allowed {
			seconds := int(math.Ceil(wait.Round(time.Millisecond).Seconds()))
			c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(max(seconds, 1)))

			return errors.WithStack(domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}

// RateLimiters holds the general API budget and the stricter credential budget.
type RateLimiters struct {
	API  *RateLimiter
	Auth *RateLimiter

	interval time.Duration
	cancel   context.CancelFunc
}

// NewRateLimiters builds both limiters from config. It returns nil when rate limiting is disabled.
func NewRateLimiters(cfg *config.Config) *RateLimiters {
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return nil
	}

	idle := 2 * cfg.RateLimit.CleanupInterval

	return &RateLimiters{
		API:      NewRateLimiter(cfg.RateLimit.RequestsPerMinute, idle),
		Auth:     NewRateLimiter(cfg.RateLimit.AuthRequestsPerMinute, idle),
		interval: cfg.RateLimit.CleanupInterval,
	}
}

// Start launches the cleanup loops.
func (r *RateLimiters) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	go r.API.Run(ctx, r.interval)
	go r.Auth.Run(ctx, r.interval)
}

// Stop ends the cleanup loops.
func (r *RateLimiters) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}
