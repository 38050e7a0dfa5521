package store

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"lerobot-metrics/internal/common"
	"lerobot-metrics/internal/domain"
	"lerobot-metrics/internal/port"
)

// CSVStore 实现了 port.SnapshotStore 接口
// 快照日志是一个只追加的 UTF-8 CSV 文件，表头固定七列
// 多进程并发追加没有加锁，这是已知风险，不在这里处理
type CSVStore struct {
	path string
}

var _ port.SnapshotStore = (*CSVStore)(nil)

// NewCSVStore 创建 CSV 存储，path 指向快照文件
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Append 追加一行快照
// 文件不存在时先建父目录和表头；已有内容永远不会被改写或重排
func (s *CSVStore) Append(snapshot *domain.Snapshot) error {
	if err := s.ensureFile(); err != nil {
		return err
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return common.WrapError(common.ErrCodeStore, "打开快照文件失败", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(snapshot.Row()); err != nil {
		return common.WrapError(common.ErrCodeStore, "写入快照行失败", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return common.WrapError(common.ErrCodeStore, "落盘快照行失败", err)
	}

	return nil
}

// Load 整表读入，含表头行
// 文件不存在时返回的错误链里带 fs.ErrNotExist，看板靠这个区分"还没有快照"
func (s *CSVStore) Load() ([][]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeStore, "打开快照文件失败", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// 行宽不一致也先读进来，坏单元格留给看板的矫正逻辑
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, common.WrapError(common.ErrCodeStore, "解析快照文件失败", err)
	}

	return records, nil
}

// ensureFile 确保文件和父目录存在，新文件先写表头
func (s *CSVStore) ensureFile() error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return common.WrapError(common.ErrCodeStore, "创建数据目录失败", err)
		}
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return common.WrapError(common.ErrCodeStore, "检查快照文件失败", err)
	}

	file, err := os.Create(s.path)
	if err != nil {
		return common.WrapError(common.ErrCodeStore, "创建快照文件失败", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(domain.CSVHeaders); err != nil {
		return common.WrapError(common.ErrCodeStore, "写入表头失败", err)
	}
	writer.Flush()
	return writer.Error()
}
