package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 应用层负责把传输格式(日期字符串)转换为领域参数
// 2. 业务规则校验由领域服务负责
// 3. 图书与详情在同一事务中创建
type CreateBookUseCase struct {
	bookService book.Service
	logger      *zap.Logger
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service, logger *zap.Logger) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		logger:      logger,
	}
}

// CreateBookRequest 创建请求DTO
type CreateBookRequest struct {
	Title  string
	Author string
	Detail *CreateDetailRequest // 可选
}

// CreateDetailRequest 创建详情请求DTO
type CreateDetailRequest struct {
	Description   string
	Publisher     string
	PublishedDate string // YYYY-MM-DD
	SellCount     int
	StockCount    int
}

// Execute 执行创建用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookItem, error) {
	var item BookItem
	err := observe(ctx, uc.logger, metrics.OpCreate, func(ctx context.Context) error {
		params := book.CreateParams{
			Title:  req.Title,
			Author: req.Author,
		}

		if req.Detail != nil {
			detail := &book.DetailParams{
				Description: req.Detail.Description,
				Publisher:   req.Detail.Publisher,
				SellCount:   req.Detail.SellCount,
				StockCount:  req.Detail.StockCount,
			}
			// 空字符串交给领域校验,返回"publishedDate is required"
			if req.Detail.PublishedDate != "" {
				date, err := parseDate(req.Detail.PublishedDate)
				if err != nil {
					return err
				}
				detail.PublishedDate = date
			}
			params.Detail = detail
		}

		b, err := uc.bookService.CreateBook(ctx, params)
		if err != nil {
			return err
		}

		uc.logger.Info("图书创建成功", zap.Uint("id", b.ID), zap.Bool("has_detail", b.HasDetail()))

		item = toBookItem(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}
