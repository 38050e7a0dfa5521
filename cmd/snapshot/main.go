package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lerobot-metrics/internal/adapter/classifier"
	ghadapter "lerobot-metrics/internal/adapter/github"
	"lerobot-metrics/internal/adapter/huggingface"
	"lerobot-metrics/internal/adapter/store"
	"lerobot-metrics/internal/config"
	"lerobot-metrics/internal/domain"
	"lerobot-metrics/internal/service"

	"github.com/robfig/cron/v3"
)

func main() {
	// 1. 命令行参数
	cronSpec := flag.String("cron", "", "定时采集的 cron 表达式 (例如 '0 9 * * 1')，空表示只采集一次")
	dataPath := flag.String("data", "", "快照 CSV 路径，默认读 DATA_PATH 环境变量")
	flag.Parse()

	// 2. 加载配置 (token 都是可选的，缺失就匿名访问)
	cfg := config.Load()
	if *dataPath != "" {
		cfg.DataPath = *dataPath
	}

	// 3. 组装采集服务
	svc := service.NewSnapshotService(
		ghadapter.NewFetcher(cfg.GitHubToken),
		huggingface.NewLister(cfg.HFToken),
		classifier.NewDatasetClassifier(config.TargetKeyword),
		store.NewCSVStore(cfg.DataPath),
	)

	// 4. 单次执行 / 定时执行分流
	if *cronSpec == "" {
		if err := captureOnce(svc); err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			os.Exit(1)
		}
		return
	}

	runScheduled(svc, *cronSpec)
}

// captureOnce 执行一次采集周期，成功时把保存的行逐字段打印出来
func captureOnce(svc *service.SnapshotService) error {
	snapshot, err := svc.Capture(context.Background())
	if err != nil {
		return err
	}

	fmt.Println("Snapshot saved:")
	row := snapshot.Row()
	for i, key := range domain.CSVHeaders {
		fmt.Printf("  %s: %s\n", key, row[i])
	}
	return nil
}

// runScheduled 按 cron 表达式定时采集，直到收到停止信号
// 单次采集失败只记录，不退出进程，下个周期照常跑
func runScheduled(svc *service.SnapshotService, spec string) {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(spec, func() {
		if err := captureOnce(svc); err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		}
	}); err != nil {
		log.Fatalf("❌ cron 表达式无效 %q: %v", spec, err)
	}

	scheduler.Start()
	fmt.Printf("⏰ 定时采集已启动: %s\n", spec)
	fmt.Println("按下 Ctrl+C 可以优雅停止程序")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\n👋 收到停止信号，正在退出...")
	// 等正在执行的采集跑完再退
	<-scheduler.Stop().Done()
}
