package main

import (
	"log"

	"github.com/taxiscope/taxi-backend-go/internal/api"
	"github.com/taxiscope/taxi-backend-go/internal/config"
	"github.com/taxiscope/taxi-backend-go/internal/dataset"
	"github.com/taxiscope/taxi-backend-go/internal/handler"
	"github.com/taxiscope/taxi-backend-go/internal/metrics"
	"github.com/taxiscope/taxi-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化指标收集器
	collector := metrics.NewCollector()

	// 初始化数据集存储
	store := dataset.NewStore(cfg.TripDataPath, cfg.ZoneLookupPath, cfg.CacheSize, collector)
	defer store.Close()

	if cfg.WatchFiles {
		if err := store.Watch(); err != nil {
			log.Fatal("Failed to watch data files:", err)
		}
	}

	// 预热快照，缺失的数据文件在启动时立即暴露
	snap, err := store.Snapshot()
	if err != nil {
		log.Fatal("Failed to build dataset snapshot:", err)
	}
	log.Printf("Dataset ready: %d clean rows (%s ~ %s)",
		len(snap.Trips), snap.Domain.MinDate, snap.Domain.MaxDate)

	// 初始化路由
	svc := service.NewAnalyticsService(store)
	router := api.SetupRouter(
		cfg,
		handler.NewDatasetHandler(svc),
		handler.NewTripHandler(svc),
		handler.NewChartsHandler(svc),
		collector,
	)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
