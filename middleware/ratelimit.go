package middleware

import (
	"net/http"

	"TaskBoardService/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CapacityMessage is the body of a request rejected by a limiter.
const CapacityMessage = "The API is at capacity, try again later."

// RateLimit rejects requests with 429 once the token bucket is empty. One
// limiter is shared by every client of this process.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			RateLimited.WithLabelValues(Endpoint(c)).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Failure{Error: CapacityMessage})
			return
		}
		c.Next()
	}
}
