package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// 固定的外部端点和目标，对应原始的部署形态
const (
	// TargetRepoOwner / TargetRepoName 观测对象仓库
	TargetRepoOwner = "huggingface"
	TargetRepoName  = "lerobot"

	// HFDatasetsAPI Hugging Face 数据集搜索端点
	HFDatasetsAPI = "https://huggingface.co/api/datasets"

	// TargetKeyword 数据集归属判断用的关键词（不区分大小写）
	TargetKeyword = "lerobot"

	// RequestTimeout 每次外部请求的固定超时
	RequestTimeout = 30 * time.Second

	// DefaultDataPath 快照 CSV 的默认位置
	DefaultDataPath = "data/weekly_snapshots.csv"

	// DefaultDashboardAddr 看板默认监听地址
	DefaultDashboardAddr = ":8080"
)

// Config 进程启动时读取一次的不可变配置
// 两个 token 都是可选的，缺失就走匿名/公共限流访问
type Config struct {
	GitHubToken   string
	HFToken       string
	DataPath      string
	DashboardAddr string
}

// Load 先尝试加载 .env，再读环境变量，最后补默认值
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Config{
		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		HFToken:       os.Getenv("HF_TOKEN"),
		DataPath:      os.Getenv("DATA_PATH"),
		DashboardAddr: os.Getenv("DASHBOARD_ADDR"),
	}
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath
	}
	if cfg.DashboardAddr == "" {
		cfg.DashboardAddr = DefaultDashboardAddr
	}
	return cfg
}
