package huggingface

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lerobot-metrics/internal/common"
	"lerobot-metrics/internal/config"
	"lerobot-metrics/internal/domain"

	"github.com/stretchr/testify/assert"
)

// setupMockHFServer 创建一个模拟的 Hugging Face API 服务器
func setupMockHFServer(t *testing.T, token string, handler http.HandlerFunc) *Lister {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Lister{
		baseURL: server.URL,
		token:   token,
		keyword: config.TargetKeyword,
		client:  server.Client(),
	}
}

func TestLister_ListDatasets(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		handler http.HandlerFunc
		verify  func(*testing.T, []domain.DatasetRecord, error)
	}{
		{
			name: "成功获取数据集列表",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "lerobot", r.URL.Query().Get("search"))
				assert.Equal(t, "1000", r.URL.Query().Get("limit"))
				assert.Equal(t, "true", r.URL.Query().Get("full"))
				// 没有token时不应该带认证头
				assert.Empty(t, r.Header.Get("Authorization"))
				fmt.Fprint(w, `[{"id":"alice/lerobot-x","tags":["robotics"]},{"id":"bob/other","author":"Bob"}]`)
			},
			verify: func(t *testing.T, records []domain.DatasetRecord, err error) {
				assert.NoError(t, err)
				assert.Len(t, records, 2)
				assert.Equal(t, "alice/lerobot-x", records[0].ID)
				assert.Equal(t, "Bob", records[1].Author)
			},
		},
		{
			name:  "token通过Bearer头传递",
			token: "hf_test_token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer hf_test_token", r.Header.Get("Authorization"))
				fmt.Fprint(w, `[]`)
			},
			verify: func(t *testing.T, records []domain.DatasetRecord, err error) {
				assert.NoError(t, err)
				assert.Empty(t, records)
			},
		},
		{
			name: "HTTP 429 返回MetricsError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprint(w, `{"error":"Rate limit reached"}`)
			},
			verify: func(t *testing.T, records []domain.DatasetRecord, err error) {
				assert.Error(t, err)
				var metricsErr *common.MetricsError
				assert.True(t, errors.As(err, &metricsErr))
				assert.Equal(t, http.StatusTooManyRequests, metricsErr.StatusCode)
				assert.Contains(t, metricsErr.Body, "Rate limit reached")
			},
		},
		{
			name: "响应不是数组时返回MetricsError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"error":"unexpected shape"}`)
			},
			verify: func(t *testing.T, records []domain.DatasetRecord, err error) {
				assert.Error(t, err)
				var metricsErr *common.MetricsError
				assert.True(t, errors.As(err, &metricsErr))
				assert.Contains(t, metricsErr.Message, "Unexpected Hugging Face API response format")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := setupMockHFServer(t, tt.token, tt.handler)
			records, err := lister.ListDatasets(context.Background())
			tt.verify(t, records, err)
		})
	}
}

func TestLister_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	lister := &Lister{baseURL: server.URL, keyword: "lerobot", client: server.Client()}
	// 提前关掉服务器，模拟连接失败
	server.Close()

	_, err := lister.ListDatasets(context.Background())
	assert.Error(t, err)

	var appErr *common.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeNetwork, appErr.Code)

	var metricsErr *common.MetricsError
	assert.False(t, errors.As(err, &metricsErr))
}
