package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"lerobot-metrics/internal/common"
	"lerobot-metrics/internal/config"
	"lerobot-metrics/internal/domain"
	"lerobot-metrics/internal/port"
)

// Lister 实现了 port.DatasetLister 接口
// Hugging Face 没有现成的 Go 客户端，这里直接用 net/http 调 REST 接口
type Lister struct {
	baseURL string
	token   string
	keyword string
	client  *http.Client
}

var _ port.DatasetLister = (*Lister)(nil)

// NewLister 初始化 Hugging Face 客户端
// token 为空就匿名访问，走公共限流
func NewLister(token string) *Lister {
	return &Lister{
		baseURL: config.HFDatasetsAPI,
		token:   token,
		keyword: config.TargetKeyword,
		client:  &http.Client{Timeout: config.RequestTimeout},
	}
}

// ListDatasets 按关键词搜索数据集，一次拉满 1000 条完整记录
func (l *Lister) ListDatasets(ctx context.Context) ([]domain.DatasetRecord, error) {
	params := url.Values{}
	params.Set("search", l.keyword)
	params.Set("limit", "1000")
	params.Set("full", "true")
	requestURL := fmt.Sprintf("%s?%s", l.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeInternal, "构造请求失败", err)
	}
	if l.token != "" {
		req.Header.Set("Authorization", "Bearer "+l.token)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeNetwork, "请求 Hugging Face API 失败", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeNetwork, "读取 Hugging Face 响应失败", err)
	}

	if resp.StatusCode >= 400 {
		return nil, common.WrapError(common.ErrCodeHuggingFaceAPI, "数据集列表请求被拒绝",
			common.NewHTTPMetricsError("Hugging Face API error", resp.StatusCode, requestURL, string(body)))
	}

	var records []domain.DatasetRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, common.WrapError(common.ErrCodeHuggingFaceAPI, "数据集列表格式异常",
			common.NewMetricsError("Unexpected Hugging Face API response format for dataset listing"))
	}

	return records, nil
}
