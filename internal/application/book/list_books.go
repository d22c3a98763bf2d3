package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. title/author为"或"关系:任一关键词命中即返回
// 2. total为过滤后、分页前的总数
// 3. 每个列表项都携带详情(没有详情时为null)
type ListBooksUseCase struct {
	bookService book.Service
	logger      *zap.Logger
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, logger *zap.Logger) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		logger:      logger,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Title  string // 书名关键词
	Author string // 作者关键词
	Offset int    // 偏移量(默认0)
	Limit  int    // 每页数量(默认10)
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	Total int64      `json:"total"`
	Items []BookItem `json:"items"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	params := book.ListParams{
		Title:  req.Title,
		Author: req.Author,
		Offset: req.Offset,
		Limit:  req.Limit,
	}

	var resp *ListBooksResponse
	err := observe(ctx, uc.logger, metrics.OpList, func(ctx context.Context) error {
		books, total, err := uc.bookService.ListBooks(ctx, params)
		if err != nil {
			return err
		}

		// 空结果序列化为[]而不是null
		items := make([]BookItem, len(books))
		for i, b := range books {
			items[i] = toBookItem(b)
		}

		resp = &ListBooksResponse{Total: total, Items: items}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
