package port

import (
	"context"

	"lerobot-metrics/internal/domain"
)

// MetricsSource (侦察兵): 负责从代码托管平台抓取标量指标
// 目前的实现是 GitHub API，匿名访问也可以用，只是限流更严
type MetricsSource interface {
	// RepoStars 目标仓库当前的 star 数
	RepoStars(ctx context.Context) (int, error)

	// TopicRepoCount 指定 topic 下的仓库总数
	// 比如: TopicRepoCount(ctx, "robotics")
	TopicRepoCount(ctx context.Context, topic string) (int, error)
}

// DatasetLister (清单员): 负责拉取数据集托管平台的搜索结果
// 返回的是原始记录列表，归属判断交给分类器
type DatasetLister interface {
	ListDatasets(ctx context.Context) ([]domain.DatasetRecord, error)
}

// DatasetClassifier (鉴定师): 负责判断记录归属并去重上传者
// 纯计算，单遍扫描
type DatasetClassifier interface {
	// Summarize 返回归属记录数和去重后的上传者数
	Summarize(records []domain.DatasetRecord) (datasetCount, uploaderCount int)
}

// SnapshotStore (仓库管理员): 负责快照的持久化
// 写路径只追加，读路径整表读入，两条路径只共享文件格式
type SnapshotStore interface {
	// Append 追加一行快照，文件不存在时先建表头
	Append(snapshot *domain.Snapshot) error

	// Load 读出全部原始记录（含表头行），交给看板做类型矫正
	// 文件不存在时返回的错误满足 errors.Is(err, fs.ErrNotExist)
	Load() ([][]string, error)
}
