package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/pkg/response"
)

const apiKeyHeader = "X-API-Key"

// Auth requires a valid API key. With no key configured every request
// passes, which is the local development mode.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "auth: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
