package main

import (
	"fmt"
	"log"
	"os"

	"lerobot-metrics/internal/adapter/store"
	"lerobot-metrics/internal/adapter/web"
	"lerobot-metrics/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 看板和采集进程只共享这一个 CSV 文件，没有任何进程内耦合
	server := web.NewServer(store.NewCSVStore(cfg.DataPath), cfg.DataPath)

	fmt.Printf("📊 看板已启动: http://localhost%s (数据源: %s)\n", cfg.DashboardAddr, cfg.DataPath)
	if err := server.Router().Run(cfg.DashboardAddr); err != nil {
		log.Fatalf("❌ 看板启动失败: %v", err)
	}
}
