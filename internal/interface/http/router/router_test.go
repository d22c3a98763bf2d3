package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookapi/internal/application/book"
	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/database/dbtest"
	"github.com/xiebiao/bookapi/internal/interface/http/handler"
	"github.com/xiebiao/bookapi/internal/interface/http/router"
)

// envelope 统一响应信封,detail按需再解析
type envelope struct {
	Error  string          `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

type bookItem struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Detail *struct {
		Description   string  `json:"description"`
		Publisher     string  `json:"publisher"`
		PublishedDate *string `json:"publishedDate"`
		SellCount     int     `json:"sellCount"`
		StockCount    int     `json:"stockCount"`
	} `json:"detail"`
}

type itemDetail struct {
	Item bookItem `json:"item"`
}

type pageDetail struct {
	Total int64      `json:"total"`
	Items []bookItem `json:"items"`
}

func newEngine(t *testing.T) *gin.Engine {
	db := dbtest.New(t)
	svc := book.NewService(database.NewBookRepository(db), database.NewTxManager(db))
	log := zap.NewNop()

	h := handler.NewBookHandler(
		appbook.NewListBooksUseCase(svc, log),
		appbook.NewGetBookUseCase(svc, log),
		appbook.NewCreateBookUseCase(svc, log),
		appbook.NewUpdateBookUseCase(svc, log),
		appbook.NewDeleteBookUseCase(svc, log),
	)

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: gin.TestMode},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		CORS: config.CORSConfig{
			Enabled:      true,
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		},
	}
	return router.New(cfg, log, h)
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "响应不是合法的信封: %s", w.Body.String())
	}
	return w, env
}

func detailString(t *testing.T, env envelope) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(env.Detail, &s))
	return s
}

func detailItem(t *testing.T, env envelope) bookItem {
	t.Helper()
	var d itemDetail
	require.NoError(t, json.Unmarshal(env.Detail, &d))
	return d.Item
}

func detailPage(t *testing.T, env envelope) pageDetail {
	t.Helper()
	var d pageDetail
	require.NoError(t, json.Unmarshal(env.Detail, &d))
	return d
}

// TestBookLifecycle 创建 → 更新 → 删除 → 查询404
func TestBookLifecycle(t *testing.T) {
	r := newEngine(t)

	w, env := do(t, r, http.MethodPost, "/books/",
		`{"title":"Test Book","author":"Tester","detail":{"publisher":"TestPub","publishedDate":"2024-01-01"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "success", env.Error)
	created := detailItem(t, env)
	require.NotZero(t, created.ID)
	require.NotNil(t, created.Detail)
	assert.Equal(t, "TestPub", created.Detail.Publisher)
	require.NotNil(t, created.Detail.PublishedDate)
	assert.Equal(t, "2024-01-01", *created.Detail.PublishedDate)

	path := fmt.Sprintf("/books/%d", created.ID)

	w, env = do(t, r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, detailItem(t, env))

	w, env = do(t, r, http.MethodPut, path, `{"title":"Updated Title","detail":{"publisher":"UpdatedPub"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := detailItem(t, env)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, "Tester", updated.Author)
	assert.Equal(t, "UpdatedPub", updated.Detail.Publisher)
	assert.Equal(t, "2024-01-01", *updated.Detail.PublishedDate)

	w, env = do(t, r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Error)
	assert.Equal(t, "Book and its details deleted successfully", detailString(t, env))

	w, env = do(t, r, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_404", env.Error)
	assert.Equal(t, fmt.Sprintf("Book with ID %d not found", created.ID), detailString(t, env))
}

func TestGetBook_Errors(t *testing.T) {
	r := newEngine(t)

	tests := []struct {
		path     string
		wantCode int
		wantTag  string
	}{
		{"/books/0", http.StatusBadRequest, "ERR_400"},
		{"/books/-7", http.StatusBadRequest, "ERR_400"},
		{"/books/abc", http.StatusBadRequest, "ERR_400"},
		{"/books/12345", http.StatusNotFound, "ERR_404"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, env := do(t, r, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantTag, env.Error)
		})
	}
}

func TestCreateBook_Validation(t *testing.T) {
	r := newEngine(t)

	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{"缺少title", `{"author":"A"}`, "title is required"},
		{"title为空白", `{"title":"   ","author":"A"}`, "title is required"},
		{"详情缺少publisher", `{"title":"T","author":"A","detail":{"publishedDate":"2024-01-01"}}`, "detail.publisher is required"},
		{"日期格式错误", `{"title":"T","author":"A","detail":{"publisher":"P","publishedDate":"01/01/2024"}}`, "detail.publishedDate must be in YYYY-MM-DD format"},
		{"库存为负", `{"title":"T","author":"A","detail":{"publisher":"P","publishedDate":"2024-01-01","stockCount":-1}}`, "detail.stockCount must be >= 0"},
		{"JSON格式错误", `{"title":`, "Invalid request body: malformed JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, "/books/", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "ERR_400", env.Error)
			assert.Equal(t, tt.wantDetail, detailString(t, env))
		})
	}

	// 校验失败不应写入任何数据
	_, env := do(t, r, http.MethodGet, "/books/", "")
	assert.Equal(t, int64(0), detailPage(t, env).Total)
}

func TestUpdateAndDelete_NotFound(t *testing.T) {
	r := newEngine(t)

	w, env := do(t, r, http.MethodPut, "/books/999", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_404", env.Error)
	assert.Equal(t, "Book not found", detailString(t, env))

	w, env = do(t, r, http.MethodDelete, "/books/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found", detailString(t, env))

	w, env = do(t, r, http.MethodDelete, "/books/0", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_404", env.Error)
}

func TestUpdateBook_PartialFields(t *testing.T) {
	r := newEngine(t)

	_, env := do(t, r, http.MethodPost, "/books",
		`{"title":"T","author":"A","detail":{"description":"desc","publisher":"P","publishedDate":"2020-05-01","sellCount":4,"stockCount":2}}`)
	created := detailItem(t, env)
	path := fmt.Sprintf("/books/%d", created.ID)

	// 只改title:author与detail保持不变
	_, env = do(t, r, http.MethodPut, path, `{"title":"T2"}`)
	got := detailItem(t, env)
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, "A", got.Author)
	assert.Equal(t, created.Detail, got.Detail)

	// 只改detail.publisher:description与publishedDate保持不变
	_, env = do(t, r, http.MethodPut, path, `{"detail":{"publisher":"P2"}}`)
	got = detailItem(t, env)
	assert.Equal(t, "P2", got.Detail.Publisher)
	assert.Equal(t, "desc", got.Detail.Description)
	assert.Equal(t, "2020-05-01", *got.Detail.PublishedDate)
	assert.Equal(t, 4, got.Detail.SellCount)

	// 显式的零值也会写入
	_, env = do(t, r, http.MethodPut, path, `{"detail":{"stockCount":0}}`)
	assert.Equal(t, 0, detailItem(t, env).Detail.StockCount)

	w, env := do(t, r, http.MethodPut, path, `{"author":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "author must not be empty", detailString(t, env))
}

func TestListBooks(t *testing.T) {
	r := newEngine(t)

	for _, body := range []string{
		`{"title":"Test Driven Development","author":"Beck"}`,
		`{"title":"The Go Programming Language","author":"Donovan"}`,
		`{"title":"Testing in Go","author":"Adelstein","detail":{"publisher":"P","publishedDate":"2021-01-01"}}`,
		`{"title":"Refactoring","author":"Fowler"}`,
	} {
		w, _ := do(t, r, http.MethodPost, "/books/", body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("title过滤不区分大小写", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/books/?title=test", "")
		page := detailPage(t, env)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Items, 2)
		for _, item := range page.Items {
			assert.Contains(t, strings.ToLower(item.Title), "test")
		}
		assert.Nil(t, page.Items[0].Detail)
		assert.NotNil(t, page.Items[1].Detail)
	})

	t.Run("title与author为或关系", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/books?title=refactor&author=donovan", "")
		assert.Equal(t, int64(2), detailPage(t, env).Total)
	})

	t.Run("total为分页前的总数", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/books/?offset=1&limit=2", "")
		page := detailPage(t, env)
		assert.Equal(t, int64(4), page.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "The Go Programming Language", page.Items[0].Title)
	})

	t.Run("没有匹配时items为空数组", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/books/?author=nobody", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Detail), `"items":[]`)
	})

	t.Run("非法分页参数", func(t *testing.T) {
		for _, q := range []string{"offset=-1", "limit=0", "limit=abc"} {
			w, env := do(t, r, http.MethodGet, "/books/?"+q, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
			assert.Equal(t, "ERR_400", env.Error, q)
		}
	})
}

func TestAmbientRoutes(t *testing.T) {
	r := newEngine(t)

	w, env := do(t, r, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", detailString(t, env))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, env = do(t, r, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_404", env.Error)

	// 先产生一次请求,再检查指标端点
	w, _ = do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), `path="/ping"`)
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/books/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}
