package classifier

import (
	"strings"

	"lerobot-metrics/internal/domain"
	"lerobot-metrics/internal/port"
)

// DatasetClassifier 实现了 port.DatasetClassifier 接口
// 判断数据集记录是否属于目标生态，并归一化上传者身份
// 纯函数，不做任何 I/O
type DatasetClassifier struct {
	keyword string
}

var _ port.DatasetClassifier = (*DatasetClassifier)(nil)

// NewDatasetClassifier 创建分类器，keyword 匹配不区分大小写
func NewDatasetClassifier(keyword string) *DatasetClassifier {
	return &DatasetClassifier{keyword: strings.ToLower(keyword)}
}

// IsTargetDataset 归属判断：id 或任意一个 tag 包含关键词就算
// id 缺失按空串处理，不是错误
func (c *DatasetClassifier) IsTargetDataset(rec domain.DatasetRecord) bool {
	if strings.Contains(strings.ToLower(rec.ID), c.keyword) {
		return true
	}
	for _, tag := range rec.Tags {
		if strings.Contains(strings.ToLower(tag), c.keyword) {
			return true
		}
	}
	return false
}

// ExtractUploader 归一化上传者身份
// 优先用 author 字段；没有就取 id 里第一个 "/" 之前的 owner 段
// 都拿不到就返回 false，这条记录不计入上传者集合
func (c *DatasetClassifier) ExtractUploader(rec domain.DatasetRecord) (string, bool) {
	if author := strings.TrimSpace(rec.Author); author != "" {
		return strings.ToLower(author), true
	}

	if idx := strings.Index(rec.ID, "/"); idx >= 0 {
		owner := strings.TrimSpace(rec.ID[:idx])
		if owner != "" {
			return strings.ToLower(owner), true
		}
	}

	return "", false
}

// Summarize 单遍扫描全部记录，产出两个聚合值：
// 归属记录数，以及去重后的上传者数（大小写和首尾空白不敏感）
func (c *DatasetClassifier) Summarize(records []domain.DatasetRecord) (datasetCount, uploaderCount int) {
	uploaders := make(map[string]struct{})

	for _, rec := range records {
		if !c.IsTargetDataset(rec) {
			continue
		}
		datasetCount++

		if uploader, ok := c.ExtractUploader(rec); ok {
			uploaders[uploader] = struct{}{}
		}
	}

	return datasetCount, len(uploaders)
}
