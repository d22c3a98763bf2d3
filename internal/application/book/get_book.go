package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
	logger      *zap.Logger
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service, logger *zap.Logger) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		logger:      logger,
	}
}

// Execute 执行详情查询用例
// id非正整数返回400,图书不存在返回404
func (uc *GetBookUseCase) Execute(ctx context.Context, id int64) (*BookItem, error) {
	var item BookItem
	err := observe(ctx, uc.logger, metrics.OpGet, func(ctx context.Context) error {
		b, err := uc.bookService.GetBook(ctx, id)
		if err != nil {
			return err
		}

		uc.logger.Debug("查询到图书",
			zap.Uint("id", b.ID),
			zap.String("title", b.Title),
			zap.String("author", b.Author),
			zap.Bool("has_detail", b.HasDetail()),
		)

		item = toBookItem(b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}
