package book

import (
	"time"

	"github.com/xiebiao/bookapi/internal/domain/book"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// DateLayout 出版日期的传输格式
const DateLayout = "2006-01-02"

// BookItem 图书DTO
// 详情不存在时detail为null
type BookItem struct {
	ID     uint        `json:"id" example:"1"`
	Title  string      `json:"title" example:"Harry Potter"`
	Author string      `json:"author" example:"J.K. Rowling"`
	Detail *DetailItem `json:"detail"`
}

// DetailItem 图书详情DTO
type DetailItem struct {
	Description   string  `json:"description" example:"The first book"`
	Publisher     string  `json:"publisher" example:"Bloomsbury"`
	PublishedDate *string `json:"publishedDate" example:"1997-06-26"` // 从未设置时为null
	SellCount     int     `json:"sellCount" example:"0"`
	StockCount    int     `json:"stockCount" example:"10"`
}

// toBookItem 领域实体 → DTO
func toBookItem(b *book.Book) BookItem {
	item := BookItem{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
	}
	if b.Detail != nil {
		d := b.Detail
		item.Detail = &DetailItem{
			Description: d.Description,
			Publisher:   d.Publisher,
			SellCount:   d.SellCount,
			StockCount:  d.StockCount,
		}
		if d.PublishedDate != nil {
			s := d.PublishedDate.Format(DateLayout)
			item.Detail.PublishedDate = &s
		}
	}
	return item
}

// parseDate 解析YYYY-MM-DD,失败返回400
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.Newf(apperrors.ErrCodeInvalidArgument,
			"detail.publishedDate must be in YYYY-MM-DD format, got %q", s)
	}
	return t, nil
}
