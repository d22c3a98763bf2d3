package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/pkg/metrics"
)

// DeletedMessage 删除成功时返回给客户端的提示
const DeletedMessage = "Book and its details deleted successfully"

// DeleteBookUseCase 删除图书用例
// 图书与详情在同一事务中删除
type DeleteBookUseCase struct {
	bookService book.Service
	logger      *zap.Logger
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, logger *zap.Logger) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		logger:      logger,
	}
}

// Execute 执行删除用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id int64) error {
	return observe(ctx, uc.logger, metrics.OpDelete, func(ctx context.Context) error {
		if err := uc.bookService.DeleteBook(ctx, id); err != nil {
			return err
		}
		uc.logger.Info("图书删除成功", zap.Int64("id", id))
		return nil
	})
}
