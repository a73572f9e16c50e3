package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"event-discovery-app/dto/res"
)

// IPRateLimiter keeps a token bucket per client IP and drops requests that
// exceed it. Idle buckets are purged by a background goroutine.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	r        rate.Limit
	b        int
	done     chan struct{}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	limiter := &IPRateLimiter{
		visitors: make(map[string]*visitor),
		r:        r,
		b:        b,
		done:     make(chan struct{}),
	}

	go limiter.cleanupVisitors()

	return limiter
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	v, exists := i.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (i *IPRateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-i.done:
			return
		case <-ticker.C:
			i.mu.Lock()
			for ip, v := range i.visitors {
				if time.Since(v.lastSeen) > 3*time.Minute {
					delete(i.visitors, ip)
				}
			}
			i.mu.Unlock()
		}
	}
}

// Close stops the background cleanup goroutine.
func (i *IPRateLimiter) Close() {
	close(i.done)
}

func (i *IPRateLimiter) Handle(c *fiber.Ctx) error {
	if !i.getLimiter(c.IP()).Allow() {
		return c.Status(fiber.StatusTooManyRequests).JSON(res.ErrorResponse{
			Status:     fiber.ErrTooManyRequests.Message,
			StatusCode: fiber.StatusTooManyRequests,
			Error:      "Too many requests",
		})
	}
	return c.Next()
}
