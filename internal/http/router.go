package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/service"
)

// NewRouter configura el router de Gin con middlewares y las rutas del
// servicio. limiter puede ser nil cuando no hay Redis configurado.
func NewRouter(logger *zap.Logger, limiter service.RateLimiter, h *BrandVoiceHandler) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	// El health check queda fuera del rate limit.
	r.GET("/api/v1/brand-voice/health", h.Health)

	api := r.Group("/api/v1/brand-voice", rateLimitMiddleware(limiter))
	api.POST("/profiles", h.CreateProfile)
	api.GET("/profiles/:customerId", h.GetProfile)
	api.DELETE("/profiles/:customerId", h.DeleteProfile)
	api.POST("/validate", h.ValidateContent)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// rateLimitMiddleware corta con 429 cuando la IP excede la ventana.
func rateLimitMiddleware(limiter service.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
