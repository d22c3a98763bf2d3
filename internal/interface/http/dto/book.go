package dto

import (
	appbook "github.com/xiebiao/bookapi/internal/application/book"
)

// ListBooksQuery HTTP图书列表查询参数
// validator tag说明:
// - offset/limit未提供时取默认值0/10
// - 非数字或越界的值由绑定阶段拒绝(400)
type ListBooksQuery struct {
	Title  string `form:"title" example:"potter"`
	Author string `form:"author" example:"rowling"`
	Offset int    `form:"offset,default=0" binding:"min=0" example:"0"`
	Limit  int    `form:"limit,default=10" binding:"min=1" example:"10"`
}

// CreateBookRequest HTTP创建图书请求
type CreateBookRequest struct {
	Title  string               `json:"title" binding:"required" example:"Harry Potter"`
	Author string               `json:"author" binding:"required" example:"J.K. Rowling"`
	Detail *CreateDetailRequest `json:"detail"`
}

// CreateDetailRequest HTTP创建详情请求
type CreateDetailRequest struct {
	Description   string `json:"description" example:"The first book"`
	Publisher     string `json:"publisher" binding:"required" example:"Bloomsbury"`
	PublishedDate string `json:"publishedDate" binding:"required,datetime=2006-01-02" example:"1997-06-26"`
	SellCount     int    `json:"sellCount" binding:"min=0" example:"0"`
	StockCount    int    `json:"stockCount" binding:"min=0" example:"10"`
}

// UpdateBookRequest HTTP更新图书请求
// 所有字段可选,未出现的字段保持原值
type UpdateBookRequest struct {
	Title  *string              `json:"title" binding:"omitempty,min=1" example:"Harry Potter 2"`
	Author *string              `json:"author" binding:"omitempty,min=1" example:"J.K. Rowling"`
	Detail *UpdateDetailRequest `json:"detail"`
}

// UpdateDetailRequest HTTP详情部分更新
type UpdateDetailRequest struct {
	Description   *string `json:"description" example:"Updated description"`
	Publisher     *string `json:"publisher" example:"Scholastic"`
	PublishedDate *string `json:"publishedDate" binding:"omitempty,datetime=2006-01-02" example:"1998-09-01"`
	SellCount     *int    `json:"sellCount" binding:"omitempty,min=0" example:"5"`
	StockCount    *int    `json:"stockCount" binding:"omitempty,min=0" example:"3"`
}

// BookResponse 单本图书响应(swagger文档用)
type BookResponse struct {
	Item appbook.BookItem `json:"item"`
}

// BookPageResponse 图书列表响应(swagger文档用)
type BookPageResponse struct {
	Total int64              `json:"total" example:"1"`
	Items []appbook.BookItem `json:"items"`
}

// ToListRequest 转换为应用层请求
func (q ListBooksQuery) ToListRequest() appbook.ListBooksRequest {
	return appbook.ListBooksRequest{
		Title:  q.Title,
		Author: q.Author,
		Offset: q.Offset,
		Limit:  q.Limit,
	}
}

// ToCreateRequest 转换为应用层请求
func (r CreateBookRequest) ToCreateRequest() appbook.CreateBookRequest {
	req := appbook.CreateBookRequest{
		Title:  r.Title,
		Author: r.Author,
	}
	if d := r.Detail; d != nil {
		req.Detail = &appbook.CreateDetailRequest{
			Description:   d.Description,
			Publisher:     d.Publisher,
			PublishedDate: d.PublishedDate,
			SellCount:     d.SellCount,
			StockCount:    d.StockCount,
		}
	}
	return req
}

// ToUpdateRequest 转换为应用层请求
func (r UpdateBookRequest) ToUpdateRequest() appbook.UpdateBookRequest {
	req := appbook.UpdateBookRequest{
		Title:  r.Title,
		Author: r.Author,
	}
	if d := r.Detail; d != nil {
		req.Detail = &appbook.UpdateDetailRequest{
			Description:   d.Description,
			Publisher:     d.Publisher,
			PublishedDate: d.PublishedDate,
			SellCount:     d.SellCount,
			StockCount:    d.StockCount,
		}
	}
	return req
}
