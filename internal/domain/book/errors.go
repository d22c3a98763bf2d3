package book

import (
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.NotFound("Book not found")

	// ErrDetailNotFound 图书详情不存在
	ErrDetailNotFound = apperrors.NotFound("Book detail not found")

	// ErrInvalidBookID 图书ID必须为正整数
	ErrInvalidBookID = apperrors.InvalidArgument("Invalid book ID")

	// ErrTitleRequired 书名必填
	ErrTitleRequired = apperrors.InvalidArgument("title is required")

	// ErrAuthorRequired 作者必填
	ErrAuthorRequired = apperrors.InvalidArgument("author is required")

	// ErrPublisherRequired 出版社必填(提供详情时)
	ErrPublisherRequired = apperrors.InvalidArgument("detail.publisher is required")

	// ErrPublishedDateRequired 出版日期必填(提供详情时)
	ErrPublishedDateRequired = apperrors.InvalidArgument("detail.publishedDate is required")

	// ErrNegativeCount 销量/库存不能为负数
	ErrNegativeCount = apperrors.InvalidArgument("detail.sellCount and detail.stockCount must be non-negative")
)

// NotFoundByID 带ID的"图书不存在"错误
func NotFoundByID(id int64) error {
	return apperrors.Newf(apperrors.ErrCodeNotFound, "Book with ID %d not found", id)
}
