package book

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookapi/pkg/errors"
	"github.com/xiebiao/bookapi/pkg/metrics"
	"github.com/xiebiao/bookapi/pkg/tracing"
)

// observe 为一次用例执行包上Span、业务指标和日志
// 1. Span名为"book.<operation>",出错时记录错误状态
// 2. 指标按success/failure计数并记录耗时
// 3. 4xx属于调用方错误,记Debug;其余错误记Warn(5xx的详细原因由response.Error记录)
func observe(ctx context.Context, log *zap.Logger, operation string, fn func(ctx context.Context) error) error {
	ctx, span := tracing.StartSpan(ctx, tracing.TracerName, "book."+operation)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	tracing.RecordError(span, err)
	metrics.ObserveBookOperation(operation, err, elapsed)

	if err != nil {
		fields := []zap.Field{
			zap.String("operation", operation),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		}
		if apperrors.GetAppError(err).Code < apperrors.ErrCodeInternal {
			log.Debug("图书操作被拒绝", fields...)
		} else {
			log.Warn("图书操作失败", fields...)
		}
	}

	return err
}
