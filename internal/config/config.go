package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port           string
	TripDataPath   string
	ZoneLookupPath string
	GinMode        string
	CacheSize      int  // 快照缓存容量
	WatchFiles     bool // 监听数据文件变化
}

// Load 加载配置
func Load() *Config {
	// .env 文件可选，缺失时直接读环境变量
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	tripPath := os.Getenv("TRIP_DATA_PATH")
	if tripPath == "" {
		tripPath = "./data/raw/yellowtripdata.parquet"
	}

	zonePath := os.Getenv("ZONE_LOOKUP_PATH")
	if zonePath == "" {
		zonePath = "./data/raw/zonelookup.csv"
	}

	ginMode := os.Getenv("GIN_MODE")

	cacheSize := 4
	if v := os.Getenv("SNAPSHOT_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cacheSize = n
		}
	}

	watchFiles := true
	if v := os.Getenv("WATCH_DATA_FILES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			watchFiles = b
		}
	}

	return &Config{
		Port:           port,
		TripDataPath:   tripPath,
		ZoneLookupPath: zonePath,
		GinMode:        ginMode,
		CacheSize:      cacheSize,
		WatchFiles:     watchFiles,
	}
}
