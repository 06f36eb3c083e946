package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles a route per client, where a client is identified by
// IP plus User-Agent so shared NATs don't all land in one bucket. It is
// advisory abuse-blunting, not a correctness mechanism.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	window  time.Duration
	max     int
	message string
}

func NewRateLimiter(window time.Duration, max int, message string) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientBucket),
		window:  window,
		max:     max,
		message: message,
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	bucket, ok := rl.clients[key]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(rate.Every(rl.window/time.Duration(rl.max)), rl.max)}
		rl.clients[key] = bucket
	}
	bucket.lastSeen = now

	// Drop buckets idle for several windows so the map stays bounded.
	if len(rl.clients) > 1000 {
		for k, b := range rl.clients {
			if now.Sub(b.lastSeen) > 3*rl.window {
				delete(rl.clients, k)
			}
		}
	}

	return bucket.limiter.Allow()
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.ClientIP() + ":" + ctx.GetHeader("User-Agent")
		if !rl.allow(key) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": rl.message,
			})
			return
		}
		ctx.Next()
	}
}
