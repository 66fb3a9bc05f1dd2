package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/wmsConsultant/backend/internal/config"
)

// RateLimiter applies a fixed-window request limit per client IP. With a
// redis client the window counter is shared via INCR+EXPIRE; without one
// an in-process map is used. Redis errors fail open.
type RateLimiter struct {
	rdb    *redis.Client
	window time.Duration
	max    int

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) *RateLimiter {
	return &RateLimiter{
		rdb:     rdb,
		window:  time.Duration(cfg.WindowMinutes) * time.Minute,
		max:     cfg.MaxRequests,
		windows: make(map[string]*window),
	}
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.Request.Context(), c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":  42901,
				"error": "too many requests, try again later",
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, ip string) bool {
	if rl.rdb != nil {
		return rl.allowRedis(ctx, ip)
	}
	return rl.allowLocal(ip)
}

func (rl *RateLimiter) allowRedis(ctx context.Context, ip string) bool {
	key := fmt.Sprintf("ratelimit:%s", ip)
	n, err := rl.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		rl.rdb.Expire(ctx, key, rl.window)
	}
	return n <= int64(rl.max)
}

func (rl *RateLimiter) allowLocal(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[ip]
	if !ok || now.After(w.resetAt) {
		rl.windows[ip] = &window{count: 1, resetAt: now.Add(rl.window)}
		return true
	}
	w.count++
	return w.count <= rl.max
}
