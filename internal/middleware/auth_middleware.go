package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tokovape/tokovape_api/internal/utils"
)

// LoginRateLimit throttles credential guessing on the login endpoint. Only
// failed attempts count against the per-IP window.
type LoginRateLimit struct {
	rateLimiter *InvalidAuthRateLimiter
}

// NewLoginRateLimit constructs a LoginRateLimit.
func NewLoginRateLimit() *LoginRateLimit {
	return &LoginRateLimit{
		rateLimiter: NewInvalidAuthRateLimiter(),
	}
}

// Handle returns a Gin middleware for the login route.
func (m *LoginRateLimit) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if m.rateLimiter.Blocked(ip) {
			utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many failed login attempts")
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() == 401 || c.Writer.Status() == 403 {
			m.rateLimiter.RecordFailure(ip)
		}
	}
}
