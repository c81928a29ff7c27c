package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/news-admin/internal/auth"
	"github.com/news-admin/internal/config"
	"github.com/news-admin/internal/service"
	"github.com/rs/zerolog"
)

// AdminPrefix is the path prefix protected by the access gate
const AdminPrefix = "/admin"

const requestIDHeader = "X-Request-Id"

// HealthChecker reports whether the data store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, store HealthChecker, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware. CORS runs before the gate so preflight requests are answered unauthenticated.
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	if h := corsMiddleware(cfg.CORS); h != nil {
		router.Use(h)
	}
	router.Use(auth.Gate(AdminPrefix, auth.DefaultRealm, auth.NewStaticCredentials(cfg.Auth.User, cfg.Auth.Password), log))

	router.SetHTMLTemplate(loadTemplates(cfg.News.Location()))

	// Handlers
	newsHandler := NewNewsHandler(services, log)
	adminHandler := NewAdminHandler(services, cfg, log)

	// Public
	router.GET("/", adminHandler.Home)
	router.GET("/health", healthCheck(store, log))

	admin := router.Group(AdminPrefix)
	{
		// Server-rendered panel
		admin.GET("", adminHandler.Index)
		admin.POST("/news", adminHandler.Create)
		admin.POST("/news/:id", adminHandler.Update)
		admin.POST("/news/:id/delete", adminHandler.Delete)

		// JSON API
		news := admin.Group("/api/news")
		{
			news.GET("", newsHandler.ListNews)
			news.GET("/:id", newsHandler.GetNews)
			news.POST("", newsHandler.CreateNews)
			news.PUT("/:id", newsHandler.UpdateNews)
			news.DELETE("/:id", newsHandler.DeleteNews)
		}
	}

	return router
}

// healthCheck returns the health status. An unreachable store reports 503.
func healthCheck(store HealthChecker, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := store.HealthCheck(c.Request.Context()); err != nil {
			log.Error().Err(err).Msg("Health check failed")
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "news-admin",
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("path", c.Request.URL.Path).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware tags each request with an id, reusing the caller's when supplied
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// corsMiddleware allows the configured origins to call the admin JSON API.
// It returns nil when no origins are configured.
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowedOrigins) == 0 {
		return nil
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(corsCfg)
}
