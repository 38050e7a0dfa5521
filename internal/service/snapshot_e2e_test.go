package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lerobot-metrics/internal/adapter/classifier"
	"lerobot-metrics/internal/adapter/store"
	"lerobot-metrics/internal/common"
	"lerobot-metrics/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// 打穿服务层 + 真实 CSV 存储的端到端用例，只有外部 API 是桩

func TestSnapshotService_EndToEnd_AppendsRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "weekly_snapshots.csv")

	metrics := new(MockMetricsSource)
	lister := new(MockDatasetLister)
	metrics.On("RepoStars", mock.Anything).Return(1234, nil)
	metrics.On("TopicRepoCount", mock.Anything, "robotics").Return(500, nil)
	metrics.On("TopicRepoCount", mock.Anything, "lerobot").Return(12, nil)
	lister.On("ListDatasets", mock.Anything).Return([]domain.DatasetRecord{
		{ID: "alice/lerobot-x", Tags: []string{}},
		{ID: "bob/other", Tags: []string{"LeRobot"}},
		{ID: "carol/unrelated", Tags: []string{"vision"}},
	}, nil)

	csvStore := store.NewCSVStore(path)
	svc := NewSnapshotService(metrics, lister, classifier.NewDatasetClassifier("lerobot"), csvStore)
	svc.nowFunc = func() time.Time {
		return time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	}

	_, err := svc.Capture(context.Background())
	assert.NoError(t, err)

	records, err := csvStore.Load()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, domain.CSVHeaders, records[0])
	assert.Equal(t, []string{
		"2026-08-23", "2026-08-23T09:00:00Z", "1234", "2", "2", "500", "12",
	}, records[1])
}

func TestSnapshotService_EndToEnd_FileUntouchedOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekly_snapshots.csv")

	metrics := new(MockMetricsSource)
	lister := new(MockDatasetLister)
	metrics.On("RepoStars", mock.Anything).Return(0,
		common.WrapError(common.ErrCodeGitHubAPI, "抓取失败",
			common.NewHTTPMetricsError("GitHub API error", 503, "https://api.github.com/repos/huggingface/lerobot", "")))

	svc := NewSnapshotService(metrics, lister, classifier.NewDatasetClassifier("lerobot"), store.NewCSVStore(path))

	_, err := svc.Capture(context.Background())
	assert.Error(t, err)

	// 采集失败时连文件都不会被创建
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
