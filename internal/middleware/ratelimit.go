package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"zenith-planner/pkg/response"
)

// RateLimit enforces a per-user request budget. Runs after Scope.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.ratePerMin <= 0 {
			c.Next()
			return
		}

		sc := ScopeFromContext(c)
		limiter, ok := m.limiters.Get(sc.UserID)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.ratePerMin)/60.0), m.ratePerMin)
			m.limiters.Add(sc.UserID, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: user=%d throttled", sc.UserID)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
