package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wavescout/wavetrack-backend-go/internal/config"
	"github.com/wavescout/wavetrack-backend-go/internal/handler"
	"github.com/wavescout/wavetrack-backend-go/internal/middleware"
	"github.com/wavescout/wavetrack-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, sessions *service.SessionService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Wavetrack API is running",
		})
	})

	sessionHandler := handler.NewSessionHandler(sessions)

	// API 路由组
	api := r.Group("/api/v1")
	{
		sessionsGroup := api.Group("/sessions")
		{
			// Mutating endpoints cap the request body and optionally
			// require a bearer token.
			upload := sessionsGroup.Group("")
			upload.Use(func(c *gin.Context) {
				c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxUploadBytes)
				c.Next()
			})
			if cfg.AuthEnabled {
				upload.Use(middleware.Auth(cfg.JWTSecret))
			}
			upload.POST("", sessionHandler.Upload)
			upload.POST("/detect", sessionHandler.Detect)

			sessionsGroup.GET("/segments", sessionHandler.GetSegments)
			sessionsGroup.GET("/waves", sessionHandler.GetWaves)
			sessionsGroup.GET("/stats", sessionHandler.GetStats)
			sessionsGroup.GET("/config", sessionHandler.GetConfig)
			sessionsGroup.GET("/export", sessionHandler.Export)
		}
	}

	return r
}
