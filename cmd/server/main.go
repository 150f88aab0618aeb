package main

import (
	"log"

	"github.com/jengzang/taxi-dashboard-go/internal/api"
	"github.com/jengzang/taxi-dashboard-go/internal/config"
	"github.com/jengzang/taxi-dashboard-go/internal/pipeline"
	"github.com/jengzang/taxi-dashboard-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 准备数据集（一次性：下载、清洗、缓存、补充展示字段）
	trips, _, err := pipeline.Load(cfg)
	if err != nil {
		log.Fatal("Failed to prepare dataset:", err)
	}
	log.Printf("Dataset ready: %d trips", len(trips))

	dashboardService := service.NewDashboardService(trips)

	// 初始化路由
	router := api.SetupRouter(dashboardService)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
