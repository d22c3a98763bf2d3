package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 所有方法都从ctx中获取事务(如果有),因此可以被Transactor组合成一个工作单元
// 3. 查询图书时总是一并加载详情,不存在"懒加载"
type Repository interface {
	// Create 创建图书(只插入books表),回填ID
	Create(ctx context.Context, book *Book) error

	// CreateDetail 创建图书详情,回填ID
	CreateDetail(ctx context.Context, detail *BookDetail) error

	// FindByID 根据ID查找图书(包含详情)
	FindByID(ctx context.Context, id uint) (*Book, error)

	// LockByID 悲观锁查询图书(SELECT FOR UPDATE,不含详情)
	// 用于更新/删除时串行化同一本书上的并发修改
	LockByID(ctx context.Context, id uint) (*Book, error)

	// FindDetailByBookID 查找图书的详情,不存在返回ErrDetailNotFound
	FindDetailByBookID(ctx context.Context, bookID uint) (*BookDetail, error)

	// Update 更新图书基本信息(title/author)
	Update(ctx context.Context, book *Book) error

	// UpdateDetail 更新图书详情
	UpdateDetail(ctx context.Context, detail *BookDetail) error

	// DeleteDetailByBookID 删除图书的详情(没有详情时不报错)
	DeleteDetailByBookID(ctx context.Context, bookID uint) error

	// Delete 删除图书,不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表(包含详情)
	// 返回:当前页数据、过滤后的总数(分页前)
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// Transactor 事务执行器
// fn返回nil时提交,返回error(或panic)时回滚
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ListParams 列表查询参数
type ListParams struct {
	Title  string // 书名关键词(不区分大小写,部分匹配)
	Author string // 作者关键词(不区分大小写,部分匹配)
	Offset int    // 偏移量(>=0)
	Limit  int    // 每页数量(>=1)
}

// 分页默认值
const (
	DefaultOffset = 0
	DefaultLimit  = 10
)

// Normalize 补齐分页默认值
func (p ListParams) Normalize() ListParams {
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// HasFilter 是否提供了title/author过滤条件
func (p ListParams) HasFilter() bool {
	return p.Title != "" || p.Author != ""
}
