package throttle

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// Config sets the per-client token bucket.
type Config struct {
	// Limit is requests per second.
	Limit float64
	// Burst is the bucket size.
	Burst int
	// Idle is how long an unused client bucket is kept.
	Idle time.Duration
	// Key identifies the client; defaults to the remote IP.
	Key func(c *fiber.Ctx) string
}

type visitor struct {
	limiter *rate.Limiter
	seen    time.Time
}

// Limiter holds one token bucket per client key.
type Limiter struct {
	cfg      Config
	mu       sync.Mutex
	visitors map[string]*visitor
	swept    time.Time
	now      func() time.Time
}

// NewLimiter creates a Limiter. Zero Idle means ten minutes. Idle buckets
// are swept at most once per Idle/2.
func NewLimiter(cfg Config) *Limiter {
	if cfg.Idle <= 0 {
		cfg.Idle = 10 * time.Minute
	}
	if cfg.Key == nil {
		cfg.Key = func(c *fiber.Ctx) string { return c.IP() }
	}
	return &Limiter{cfg: cfg, visitors: make(map[string]*visitor), now: time.Now}
}

// Allow takes a token for key.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	now := l.now()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(l.cfg.Limit), l.cfg.Burst)}
		l.visitors[key] = v
	}
	v.seen = now
	if now.Sub(l.swept) >= l.cfg.Idle/2 {
		l.sweep(now)
	}
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// sweep drops idle buckets. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	l.swept = now
	for k, v := range l.visitors {
		if now.Sub(v.seen) > l.cfg.Idle {
			delete(l.visitors, k)
		}
	}
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// Handler rejects requests over the limit with 429.
func (l *Limiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.Allow(l.cfg.Key(c)) {
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}

// New is shorthand for NewLimiter(cfg).Handler().
func New(cfg Config) fiber.Handler {
	return NewLimiter(cfg).Handler()
}
