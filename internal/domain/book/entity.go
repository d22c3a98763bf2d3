package book

import (
	"strings"
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,BookDetail是聚合内的从属实体
// 2. Detail为nil表示该图书尚无详情(允许)
// 3. ID由数据库自增分配,创建后不可变,不会复用
type Book struct {
	ID     uint
	Title  string      // 书名
	Author string      // 作者
	Detail *BookDetail // 图书详情(0或1条)
}

// BookDetail 图书详情
// 生命周期从属于Book:
// 1. 创建图书时一并创建,或首次更新详情字段时按需创建
// 2. 删除图书时必须先删除详情
type BookDetail struct {
	ID            uint
	BookID        uint       // 所属图书ID(每本书至多一条详情)
	Description   string     // 描述(可选)
	Publisher     string     // 出版社
	PublishedDate *time.Time // 出版日期(按需创建的详情可能为空)
	SellCount     int        // 销量
	StockCount    int        // 库存
}

// NewBook 创建新图书(工厂方法)
func NewBook(title, author string) *Book {
	return &Book{
		Title:  title,
		Author: author,
	}
}

// NewBookDetail 创建图书详情(工厂方法)
// 说明:publishedDate只保留日期部分
func NewBookDetail(bookID uint, p DetailParams) *BookDetail {
	date := truncateToDate(p.PublishedDate)
	return &BookDetail{
		BookID:        bookID,
		Description:   p.Description,
		Publisher:     p.Publisher,
		PublishedDate: &date,
		SellCount:     p.SellCount,
		StockCount:    p.StockCount,
	}
}

// ApplyPatch 按字段覆盖图书基本信息(PATCH语义)
// 返回值表示是否有字段发生变化
func (b *Book) ApplyPatch(p UpdateParams) bool {
	changed := false
	if p.Title != nil {
		b.Title = *p.Title
		changed = true
	}
	if p.Author != nil {
		b.Author = *p.Author
		changed = true
	}
	return changed
}

// HasDetail 是否已有详情
func (b *Book) HasDetail() bool {
	return b.Detail != nil
}

// ApplyPatch 按字段覆盖详情(PATCH语义)
// 未提供的字段保持原值
func (d *BookDetail) ApplyPatch(p DetailPatch) {
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Publisher != nil {
		d.Publisher = *p.Publisher
	}
	if p.PublishedDate != nil {
		date := truncateToDate(*p.PublishedDate)
		d.PublishedDate = &date
	}
	if p.SellCount != nil {
		d.SellCount = *p.SellCount
	}
	if p.StockCount != nil {
		d.StockCount = *p.StockCount
	}
}

// IsNew 是否尚未持久化
func (d *BookDetail) IsNew() bool {
	return d.ID == 0
}

// =========================================
// 参数对象
// =========================================

// CreateParams 创建图书参数
type CreateParams struct {
	Title  string
	Author string
	Detail *DetailParams // 可选
}

// DetailParams 创建详情参数
type DetailParams struct {
	Description   string
	Publisher     string
	PublishedDate time.Time
	SellCount     int
	StockCount    int
}

// UpdateParams 更新图书参数
// 所有字段均为指针:nil表示"未提供,保持原值"
type UpdateParams struct {
	Title  *string
	Author *string
	Detail *DetailPatch
}

// DetailPatch 详情的部分更新
type DetailPatch struct {
	Description   *string
	Publisher     *string
	PublishedDate *time.Time
	SellCount     *int
	StockCount    *int
}

// Validate 校验创建参数
// 业务规则:
// - 书名、作者必填且不能为空白
// - 提供详情时,出版社、出版日期必填,销量/库存不能为负数
func (p CreateParams) Validate() error {
	if isBlank(p.Title) {
		return ErrTitleRequired
	}
	if isBlank(p.Author) {
		return ErrAuthorRequired
	}
	if p.Detail == nil {
		return nil
	}
	if isBlank(p.Detail.Publisher) {
		return ErrPublisherRequired
	}
	if p.Detail.PublishedDate.IsZero() {
		return ErrPublishedDateRequired
	}
	if p.Detail.SellCount < 0 || p.Detail.StockCount < 0 {
		return ErrNegativeCount
	}
	return nil
}

// Validate 校验更新参数
// 业务规则:提供的书名、作者不能为空白,提供的销量/库存不能为负数
func (p UpdateParams) Validate() error {
	if p.Title != nil && isBlank(*p.Title) {
		return ErrTitleRequired
	}
	if p.Author != nil && isBlank(*p.Author) {
		return ErrAuthorRequired
	}
	if p.Detail == nil {
		return nil
	}
	if p.Detail.SellCount != nil && *p.Detail.SellCount < 0 {
		return ErrNegativeCount
	}
	if p.Detail.StockCount != nil && *p.Detail.StockCount < 0 {
		return ErrNegativeCount
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// truncateToDate 去掉时分秒,统一为UTC零点
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
