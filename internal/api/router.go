package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/taxi-dashboard-go/internal/handler"
	"github.com/jengzang/taxi-dashboard-go/internal/middleware"
	"github.com/jengzang/taxi-dashboard-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(dashboardService *service.DashboardService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
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
			"message": "Taxi Dashboard API is running",
		})
	})

	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// API 路由组
	api := r.Group("/api/v1")
	{
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/metrics", dashboardHandler.GetMetrics)
			dashboard.GET("/zones/top", dashboardHandler.GetTopZones)
			dashboard.GET("/fares/hourly", dashboardHandler.GetHourlyFares)
			dashboard.GET("/payments", dashboardHandler.GetPayments)
			dashboard.GET("/heatmap", dashboardHandler.GetHeatmap)
			dashboard.GET("/distances", dashboardHandler.GetDistances)
			dashboard.GET("/coverage", dashboardHandler.GetCoverage)
			dashboard.GET("/filters", dashboardHandler.GetFilterOptions)
		}
	}

	return r
}
