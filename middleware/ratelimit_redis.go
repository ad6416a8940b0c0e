package middleware

import (
	"net/http"
	"strconv"
	"time"

	"TaskBoardService/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisRateLimit is a fixed-window limiter shared by every instance that
// points at the same Redis. Each client ip gets maxRequests per window.
// Keys have the form rl:<window seconds>:<ip>.
//
// The limiter fails open: with a nil client or a Redis error the request is
// let through. The client ip comes from gin, so X-Forwarded-For is only
// honoured for the engine's trusted proxies.
func RedisRateLimit(client *redis.Client, maxRequests int, window time.Duration, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + c.ClientIP()

		pipe := client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		ttl := pipe.TTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			log.WithFields(logrus.Fields{
				"operation": "rate limit",
				"key":       key,
			}).Warn(err.Error())
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}
		count := incr.Val()
		// keys left without an expiry get the window again
		if ttl.Val() < 0 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				log.WithFields(logrus.Fields{
					"operation": "rate limit",
					"key":       key,
				}).Warn(err.Error())
			}
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		if count > int64(maxRequests) {
			RateLimited.WithLabelValues(Endpoint(c)).Inc()
			c.Header("Retry-After", strconv.FormatInt(int64(window.Seconds()), 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Failure{Error: CapacityMessage})
			return
		}
		c.Next()
	}
}
