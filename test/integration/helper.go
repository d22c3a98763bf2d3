//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 针对已启动的服务发请求(go run ./cmd/api),运行方式:
//
//	go test -tags=integration ./test/integration/...
//
// 服务地址可用BOOKAPI_BASE_URL覆盖

const (
	// DefaultBaseURL 默认服务地址
	DefaultBaseURL = "http://localhost:8000"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// BaseURL 当前测试使用的服务地址
func BaseURL() string {
	if u := os.Getenv("BOOKAPI_BASE_URL"); u != "" {
		return u
	}
	return DefaultBaseURL
}

// Response 统一响应信封
type Response struct {
	Status int             `json:"-"`
	Error  string          `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

// DetailData 图书详情
type DetailData struct {
	Description   string  `json:"description"`
	Publisher     string  `json:"publisher"`
	PublishedDate *string `json:"publishedDate"`
	SellCount     int     `json:"sellCount"`
	StockCount    int     `json:"stockCount"`
}

// BookData 图书
type BookData struct {
	ID     int64       `json:"id"`
	Title  string      `json:"title"`
	Author string      `json:"author"`
	Detail *DetailData `json:"detail"`
}

// ItemData 单本图书响应的detail部分
type ItemData struct {
	Item BookData `json:"item"`
}

// PageData 列表响应的detail部分
type PageData struct {
	Total int64      `json:"total"`
	Items []BookData `json:"items"`
}

// DoJSON 发送请求并解析信封
// body为nil时不带请求体
func DoJSON(t *testing.T, method, path string, body interface{}) *Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err, "JSON序列化失败")
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, BaseURL()+path, reader)
	require.NoError(t, err, "创建HTTP请求失败")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	require.NoError(t, json.Unmarshal(raw, &result), "解析JSON响应失败: %s", string(raw))
	result.Status = resp.StatusCode
	return &result
}

// DetailText 把detail解析为字符串(错误提示或成功文案)
func DetailText(t *testing.T, resp *Response) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(resp.Detail, &s), "detail不是字符串: %s", string(resp.Detail))
	return s
}

// DetailItem 把detail解析为单本图书
func DetailItem(t *testing.T, resp *Response) BookData {
	t.Helper()
	var d ItemData
	require.NoError(t, json.Unmarshal(resp.Detail, &d), "解析图书失败: %s", string(resp.Detail))
	return d.Item
}

// DetailPage 把detail解析为分页结果
func DetailPage(t *testing.T, resp *Response) PageData {
	t.Helper()
	var d PageData
	require.NoError(t, json.Unmarshal(resp.Detail, &d), "解析列表失败: %s", string(resp.Detail))
	return d
}

// CreateTestBook 创建测试图书并返回ID,测试结束时删除
func CreateTestBook(t *testing.T, title, author string) int64 {
	t.Helper()

	resp := DoJSON(t, http.MethodPost, "/books", map[string]interface{}{
		"title":  title,
		"author": author,
		"detail": map[string]interface{}{
			"description":   "集成测试用图书",
			"publisher":     "测试出版社",
			"publishedDate": "2024-01-01",
			"sellCount":     0,
			"stockCount":    10,
		},
	})
	require.Equal(t, http.StatusOK, resp.Status, "创建图书失败: %s", string(resp.Detail))

	id := DetailItem(t, resp).ID
	t.Cleanup(func() {
		DoJSON(t, http.MethodDelete, fmtID(id), nil)
	})
	return id
}
