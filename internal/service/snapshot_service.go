package service

import (
	"context"
	"fmt"
	"time"

	"lerobot-metrics/internal/domain"
	"lerobot-metrics/internal/port"
)

// 两个固定观测的 topic
const (
	TopicRobotics = "robotics"
	TopicLerobot  = "lerobot"
)

// SnapshotService 处理一次完整的快照采集
// 四路抓取顺序执行，任何一路失败整次作废，绝不落半截快照
type SnapshotService struct {
	metrics    port.MetricsSource
	datasets   port.DatasetLister
	classifier port.DatasetClassifier
	store      port.SnapshotStore
	nowFunc    func() time.Time
}

// NewSnapshotService 创建快照服务
func NewSnapshotService(
	metrics port.MetricsSource,
	datasets port.DatasetLister,
	classifier port.DatasetClassifier,
	store port.SnapshotStore,
) *SnapshotService {
	return &SnapshotService{
		metrics:    metrics,
		datasets:   datasets,
		classifier: classifier,
		store:      store,
		nowFunc:    time.Now,
	}
}

// BuildSnapshot 组装一条快照记录，不落盘
// 观测时刻在开始时取一次，所有字段共享同一个逻辑时间点
func (s *SnapshotService) BuildSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	now := s.nowFunc().UTC()

	fmt.Println("📥 正在获取目标仓库 star 数...")
	stars, err := s.metrics.RepoStars(ctx)
	if err != nil {
		return nil, err
	}

	fmt.Printf("📥 正在统计 topic:%s 仓库总数...\n", TopicRobotics)
	roboticsCount, err := s.metrics.TopicRepoCount(ctx, TopicRobotics)
	if err != nil {
		return nil, err
	}

	fmt.Printf("📥 正在统计 topic:%s 仓库总数...\n", TopicLerobot)
	lerobotCount, err := s.metrics.TopicRepoCount(ctx, TopicLerobot)
	if err != nil {
		return nil, err
	}

	fmt.Println("📥 正在拉取 Hugging Face 数据集列表...")
	records, err := s.datasets.ListDatasets(ctx)
	if err != nil {
		return nil, err
	}

	datasetCount, uploaderCount := s.classifier.Summarize(records)
	fmt.Printf("✅ 数据集归属 %d 条，去重后上传者 %d 位\n", datasetCount, uploaderCount)

	return &domain.Snapshot{
		CapturedAt:             now,
		GitHubStars:            stars,
		HFDatasetCount:         datasetCount,
		HFUniqueUploaders:      uploaderCount,
		TopicRoboticsRepoCount: roboticsCount,
		TopicLerobotRepoCount:  lerobotCount,
	}, nil
}

// Capture 执行一次完整的采集周期：组装 + 追加落盘
func (s *SnapshotService) Capture(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.BuildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.Append(snapshot); err != nil {
		return nil, err
	}

	fmt.Println("💾 快照已保存")
	return snapshot, nil
}
