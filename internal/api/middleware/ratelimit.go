package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimit returns a fixed-window rate limiter backed by Redis. Each
// caller gets `limit` requests per `window`; excess requests receive
// 429 with a Retry-After header. A nil client disables limiting, and a
// Redis outage fails open.
func RateLimit(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if client == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		windowStart := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", callerKey(c), windowStart)

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logrus.WithError(err).Warn("rate limiter unavailable, failing open")
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}

// callerKey identifies the caller by bearer token when one is present,
// so authenticated tenants behind a shared NAT do not share a budget.
// The token is hashed to keep credentials out of Redis keys.
func callerKey(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		sum := sha256.Sum256([]byte(header))
		return "token:" + hex.EncodeToString(sum[:16])
	}
	return "ip:" + c.ClientIP()
}
