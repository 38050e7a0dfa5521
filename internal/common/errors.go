package common

import "fmt"

// AppError 应用级错误结构
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误
func WrapError(code, message string, err error) error {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewError 创建新错误
func NewError(code, message string) error {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// 错误码常量
const (
	ErrCodeGitHubAPI      = "GITHUB_API_ERROR"
	ErrCodeHuggingFaceAPI = "HF_API_ERROR"
	ErrCodeNetwork        = "NETWORK_ERROR"
	ErrCodeStore          = "STORE_ERROR"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// maxBodyExcerpt 响应体摘录的最大长度，避免把整个错误页塞进日志
const maxBodyExcerpt = 200

// MetricsError 表示指标抓取失败：API 返回了 >=400 状态码，
// 或者响应成功但缺少我们需要的字段。
// 携带状态码、请求 URL 和截断后的响应体摘录，方便排查时不用重新请求。
type MetricsError struct {
	StatusCode int // 0 表示不是 HTTP 状态问题（比如字段缺失）
	URL        string
	Body       string // 已截断到 maxBodyExcerpt
	Message    string
}

func (e *MetricsError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d) for %s: %s", e.Message, e.StatusCode, e.URL, e.Body)
	}
	return e.Message
}

// NewMetricsError 创建字段缺失类的指标错误
func NewMetricsError(message string) *MetricsError {
	return &MetricsError{Message: message}
}

// NewHTTPMetricsError 创建 HTTP 状态类的指标错误，body 会被截断
func NewHTTPMetricsError(message string, statusCode int, url, body string) *MetricsError {
	return &MetricsError{
		StatusCode: statusCode,
		URL:        url,
		Body:       TruncateBody(body),
		Message:    message,
	}
}

// TruncateBody 截断响应体摘录
func TruncateBody(body string) string {
	if len(body) > maxBodyExcerpt {
		return body[:maxBodyExcerpt]
	}
	return body
}
