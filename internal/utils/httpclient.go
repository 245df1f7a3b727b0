package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient 带超时的 HTTP 客户端，供外部 API 调用使用
type HTTPClient struct {
	httpClient *http.Client
}

// NewHTTPClient 创建新的 HTTP 客户端，timeout 限定整个请求
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get 发送 GET 请求
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

// GetJSON 发送 GET 请求并解析 JSON 响应，非 200 视为失败
func (c *HTTPClient) GetJSON(url string, target interface{}) error {
	resp, err := c.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("请求失败，状态码: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("解析JSON失败: %w", err)
	}
	return nil
}
