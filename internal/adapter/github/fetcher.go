package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lerobot-metrics/internal/common"
	"lerobot-metrics/internal/config"
	"lerobot-metrics/internal/port"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"
)

// Fetcher 实现了 port.MetricsSource 接口
type Fetcher struct {
	client *github.Client
	owner  string
	repo   string
}

var _ port.MetricsSource = (*Fetcher)(nil)

// NewFetcher 初始化 GitHub 客户端
// token: GitHub Personal Access Token (如果是空字符串，就是匿名访问，限制 60次/小时)
// 不管有没有 token，单次请求都挂 30 秒超时
func NewFetcher(token string) *Fetcher {
	var client *github.Client

	if token == "" {
		client = github.NewClient(&http.Client{Timeout: config.RequestTimeout})
	} else {
		ctx := context.Background()
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc := oauth2.NewClient(ctx, ts)
		tc.Timeout = config.RequestTimeout
		client = github.NewClient(tc)
	}

	return &Fetcher{
		client: client,
		owner:  config.TargetRepoOwner,
		repo:   config.TargetRepoName,
	}
}

// RepoStars 获取目标仓库当前的 star 数
func (f *Fetcher) RepoStars(ctx context.Context) (int, error) {
	repo, _, err := f.client.Repositories.Get(ctx, f.owner, f.repo)
	if err != nil {
		return 0, f.wrapErr(err, fmt.Sprintf("获取仓库 %s/%s 信息失败", f.owner, f.repo))
	}

	if repo == nil || repo.StargazersCount == nil {
		return 0, common.WrapError(common.ErrCodeGitHubAPI, "仓库响应不完整",
			common.NewMetricsError("Missing stargazers_count in GitHub repo response"))
	}

	return repo.GetStargazersCount(), nil
}

// TopicRepoCount 获取指定 topic 下的仓库总数
// 只要聚合数字，所以 PerPage 压到 1，省配额
func (f *Fetcher) TopicRepoCount(ctx context.Context, topic string) (int, error) {
	query := fmt.Sprintf("topic:%s", topic)
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	}

	result, _, err := f.client.Search.Repositories(ctx, query, opts)
	if err != nil {
		return 0, f.wrapErr(err, fmt.Sprintf("搜索 topic:%s 失败", topic))
	}

	if result == nil || result.Total == nil {
		return 0, common.WrapError(common.ErrCodeGitHubAPI, "搜索响应不完整",
			common.NewMetricsError(fmt.Sprintf("Missing total_count in GitHub topic search response for topic:%s", topic)))
	}

	return result.GetTotal(), nil
}

// wrapErr 把 go-github 的错误分成两类：
// API 返回 >=400 → MetricsError (带状态码/URL/消息摘录)
// 其他（DNS、连接、超时）→ 网络错误
func (f *Fetcher) wrapErr(err error, message string) error {
	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return common.WrapError(common.ErrCodeGitHubAPI, message,
			common.NewHTTPMetricsError("GitHub API error", apiErr.Response.StatusCode, requestURL(apiErr.Response), apiErr.Message))
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return common.WrapError(common.ErrCodeGitHubAPI, message,
			common.NewHTTPMetricsError("GitHub API rate limited", rateErr.Response.StatusCode, requestURL(rateErr.Response), rateErr.Message))
	}

	return common.WrapError(common.ErrCodeNetwork, message, err)
}

func requestURL(resp *http.Response) string {
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return ""
}
