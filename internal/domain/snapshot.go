package domain

import (
	"strconv"
	"time"
)

// CSVHeaders 快照 CSV 的表头，顺序就是持久化的列顺序，禁止调整
var CSVHeaders = []string{
	"snapshot_date",
	"snapshot_timestamp_utc",
	"lerobot_github_stars",
	"hf_lerobot_dataset_count",
	"hf_unique_dataset_uploaders",
	"github_topic_robotics_repo_count",
	"github_topic_lerobot_repo_count",
}

// Snapshot 代表一次完整的生态指标采样
// 所有字段共享同一个观测时刻 CapturedAt（UTC）
type Snapshot struct {
	CapturedAt             time.Time `json:"captured_at"`
	GitHubStars            int       `json:"lerobot_github_stars"`
	HFDatasetCount         int       `json:"hf_lerobot_dataset_count"`
	HFUniqueUploaders      int       `json:"hf_unique_dataset_uploaders"`
	TopicRoboticsRepoCount int       `json:"github_topic_robotics_repo_count"`
	TopicLerobotRepoCount  int       `json:"github_topic_lerobot_repo_count"`
}

// Date 快照日期列的取值 (ISO 8601, UTC)
func (s *Snapshot) Date() string {
	return s.CapturedAt.UTC().Format("2006-01-02")
}

// Timestamp 快照时间戳列的取值，秒级精度，不带小数秒
func (s *Snapshot) Timestamp() string {
	return s.CapturedAt.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// Row 按 CSVHeaders 的顺序输出一行记录
func (s *Snapshot) Row() []string {
	return []string{
		s.Date(),
		s.Timestamp(),
		strconv.Itoa(s.GitHubStars),
		strconv.Itoa(s.HFDatasetCount),
		strconv.Itoa(s.HFUniqueUploaders),
		strconv.Itoa(s.TopicRoboticsRepoCount),
		strconv.Itoa(s.TopicLerobotRepoCount),
	}
}
