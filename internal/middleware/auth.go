package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/wallmod/core/internal/config"
	"github.com/wallmod/core/internal/pkg/response"
)

// Auth returns a middleware that enforces static bearer-token authentication.
// In development mode every request passes without a check. The header must
// equal "Bearer <secret>" exactly; no trimming, no case folding.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.IsDev() {
			c.Next()
			return
		}
		if cfg.APIKey == "" {
			response.Unauthorized(c)
			return
		}
		if c.GetHeader("Authorization") != "Bearer "+cfg.APIKey {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
