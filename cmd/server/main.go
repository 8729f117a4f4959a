package main

import (
	"log"

	"github.com/wavescout/wavetrack-backend-go/internal/api"
	"github.com/wavescout/wavetrack-backend-go/internal/config"
	"github.com/wavescout/wavetrack-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化会话服务
	sessions := service.NewSessionService(cfg.Detection)

	// 初始化路由
	router := api.SetupRouter(cfg, sessions)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
