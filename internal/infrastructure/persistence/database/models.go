package database

import (
	"time"
)

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/book/entity.go是领域实体,不依赖GORM
// 3. 与BookDetailModel是一对一(has one)关系,外键为book_details.book_id
// 4. 不使用软删除:删除后行必须真正消失,ID由自增保证不复用
type BookModel struct {
	ID        uint             `gorm:"primaryKey"`
	Title     string           `gorm:"size:255;not null;index;comment:书名"`
	Author    string           `gorm:"size:255;not null;index;comment:作者"`
	Detail    *BookDetailModel `gorm:"foreignKey:BookID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time        `gorm:"comment:创建时间"`
	UpdatedAt time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookDetailModel GORM图书详情模型
// 设计说明:
// 1. book_id有唯一索引:每本书至多一条详情由数据库结构保证
// 2. published_date允许为空(更新时按需创建的详情可能没有日期)
// 3. 销量/库存默认0
type BookDetailModel struct {
	ID            uint       `gorm:"primaryKey"`
	BookID        uint       `gorm:"uniqueIndex;not null;comment:图书ID"`
	Description   string     `gorm:"type:text;comment:描述"`
	Publisher     string     `gorm:"size:255;not null;default:'';comment:出版社"`
	PublishedDate *time.Time `gorm:"type:date;comment:出版日期"`
	SellCount     int        `gorm:"not null;default:0;comment:销量"`
	StockCount    int        `gorm:"not null;default:0;comment:库存"`
	CreatedAt     time.Time  `gorm:"comment:创建时间"`
	UpdatedAt     time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookDetailModel) TableName() string {
	return "book_details"
}
