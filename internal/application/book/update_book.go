package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// UpdateBookUseCase 部分更新图书用例
type UpdateBookUseCase struct {
	bookService book.Service
	logger      *zap.Logger
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, logger *zap.Logger) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		logger:      logger,
	}
}

// UpdateBookRequest 更新请求DTO
// 指针字段为nil表示"未提供,保持原值"
type UpdateBookRequest struct {
	Title  *string
	Author *string
	Detail *UpdateDetailRequest
}

// UpdateDetailRequest 详情的部分更新
type UpdateDetailRequest struct {
	Description   *string
	Publisher     *string
	PublishedDate *string // YYYY-MM-DD
	SellCount     *int
	StockCount    *int
}

// Execute 执行更新用例
// 返回更新后的完整图书(包含详情)
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id int64, req UpdateBookRequest) (*BookItem, error) {
	var item BookItem
	err := observe(ctx, uc.logger, metrics.OpUpdate, func(ctx context.Context) error {
		params := book.UpdateParams{
			Title:  req.Title,
			Author: req.Author,
		}

		if d := req.Detail; d != nil {
			patch := &book.DetailPatch{
				Description: d.Description,
				Publisher:   d.Publisher,
				SellCount:   d.SellCount,
				StockCount:  d.StockCount,
			}
			if d.PublishedDate != nil {
				date, err := parseDate(*d.PublishedDate)
				if err != nil {
					return err
				}
				patch.PublishedDate = &date
			}
			params.Detail = patch
		}

		b, err := uc.bookService.UpdateBook(ctx, id, params)
		if err != nil {
			return err
		}

		uc.logger.Info("图书更新成功", zap.Uint("id", b.ID))

		item = toBookItem(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}
