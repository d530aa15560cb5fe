package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taxiscope/taxi-backend-go/internal/config"
	"github.com/taxiscope/taxi-backend-go/internal/handler"
	"github.com/taxiscope/taxi-backend-go/internal/metrics"
	"github.com/taxiscope/taxi-backend-go/internal/middleware"
	"github.com/taxiscope/taxi-backend-go/pkg/response"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	datasetHandler *handler.DatasetHandler,
	tripHandler *handler.TripHandler,
	chartsHandler *handler.ChartsHandler,
	collector *metrics.Collector,
) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))
	r.Use(collector.Middleware())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

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
			"message": "Taxi Analytics API is running",
		})
	})

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	// 未匹配路由
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 数据集状态接口
		ds := api.Group("/dataset")
		{
			ds.GET("/summary", datasetHandler.GetSummary)
			ds.GET("/filters", datasetHandler.GetFilterDomain)
		}

		// 行程数据接口
		trips := api.Group("/trips")
		{
			trips.GET("", tripHandler.ListTrips)
			trips.GET("/metrics", tripHandler.GetSummaryMetrics)
		}

		// 图表聚合接口
		charts := api.Group("/charts")
		{
			charts.GET("/top-zones", chartsHandler.GetTopZones)
			charts.GET("/fare-by-hour", chartsHandler.GetFareByHour)
			charts.GET("/distance-distribution", chartsHandler.GetDistanceDistribution)
			charts.GET("/payment-breakdown", chartsHandler.GetPaymentBreakdown)
			charts.GET("/day-hour-matrix", chartsHandler.GetDayHourMatrix)
		}
	}

	return r
}
