package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookapi/internal/domain/book"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// bookRepository 图书仓储实现(GORM)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(记录不存在、唯一索引冲突),转换为业务错误
// 4. 所有方法通过getDB(ctx)参与调用方的事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
// 只插入books表,详情由CreateDetail单独插入
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:  b.Title,
		Author: b.Author,
	}

	if err := r.getDB(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Failed to create book")
	}

	// 回填自增ID
	b.ID = model.ID
	return nil
}

// CreateDetail 创建图书详情
func (r *bookRepository) CreateDetail(ctx context.Context, d *book.BookDetail) error {
	model := toDetailModel(d)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		// book_id唯一索引冲突:并发请求抢先创建了详情
		if isDuplicateError(err) {
			return apperrors.Wrapf(err, "Detail of book %d already exists", d.BookID)
		}
		return apperrors.Wrap(err, "Failed to create book detail")
	}

	d.ID = model.ID
	return nil
}

// FindByID 根据ID查找图书
// 教学要点:使用Preload预加载详情,避免懒加载
// 1. SELECT * FROM books WHERE id = ?
// 2. SELECT * FROM book_details WHERE book_id IN (?)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Preload("Detail").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to query book")
	}

	return toBookEntity(&model), nil
}

// LockByID 悲观锁查询图书
// SELECT * FROM books WHERE id = ? FOR UPDATE
// 注意:SQLite不支持行锁,方言会忽略FOR UPDATE(SQLite本身是库级写锁)
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to lock book")
	}

	return toBookEntity(&model), nil
}

// FindDetailByBookID 查找图书详情
func (r *bookRepository) FindDetailByBookID(ctx context.Context, bookID uint) (*book.BookDetail, error) {
	var model BookDetailModel
	err := r.getDB(ctx).Where("book_id = ?", bookID).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrDetailNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to query book detail")
	}

	return toDetailEntity(&model), nil
}

// Update 更新图书基本信息
// 使用map更新,允许写入任意值(包括与原值相同)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := r.getDB(ctx).Model(&BookModel{ID: b.ID}).Updates(map[string]interface{}{
		"title":  b.Title,
		"author": b.Author,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to update book")
	}

	return nil
}

// UpdateDetail 更新图书详情
// 教学要点:Select指定列后,结构体中的零值(如库存0、空描述)也会被写入
func (r *bookRepository) UpdateDetail(ctx context.Context, d *book.BookDetail) error {
	model := toDetailModel(d)

	result := r.getDB(ctx).Model(&BookDetailModel{ID: d.ID}).
		Select("description", "publisher", "published_date", "sell_count", "stock_count").
		Updates(model)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to update book detail")
	}

	// 不检查RowsAffected:MySQL在值未变化时返回0,详情是否存在由调用方在事务内确认
	return nil
}

// DeleteDetailByBookID 删除图书详情
// 没有详情时影响0行,不视为错误
func (r *bookRepository) DeleteDetailByBookID(ctx context.Context, bookID uint) error {
	err := r.getDB(ctx).Where("book_id = ?", bookID).Delete(&BookDetailModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "Failed to delete book detail")
	}
	return nil
}

// Delete 删除图书(物理删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to delete book")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 分页查询图书列表
// 1. title/author任一提供时,按"title匹配 OR author匹配"过滤(不区分大小写)
// 2. 总数在分页之前统计
// 3. 按id升序,保证分页稳定
// 4. Preload一次性加载当前页所有图书的详情
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.getDB(ctx).Model(&BookModel{})

	if params.HasFilter() {
		var conditions []string
		var args []interface{}
		if params.Title != "" {
			conditions = append(conditions, "LOWER(title) LIKE ? ESCAPE '"+likeEscape+"'")
			args = append(args, containsPattern(params.Title))
		}
		if params.Author != "" {
			conditions = append(conditions, "LOWER(author) LIKE ? ESCAPE '"+likeEscape+"'")
			args = append(args, containsPattern(params.Author))
		}
		query = query.Where(strings.Join(conditions, " OR "), args...)
	}

	// 新会话:Count与Find复用同一组过滤条件,互不影响
	query = query.Session(&gorm.Session{})

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "Failed to count books")
	}

	// 查询数据
	err := query.Preload("Detail").
		Order("id ASC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "Failed to list books")
	}

	// 转换为领域实体
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:     model.ID,
		Title:  model.Title,
		Author: model.Author,
	}
	if model.Detail != nil {
		b.Detail = toDetailEntity(model.Detail)
	}
	return b
}

// toDetailEntity GORM模型 → 领域实体
func toDetailEntity(model *BookDetailModel) *book.BookDetail {
	return &book.BookDetail{
		ID:            model.ID,
		BookID:        model.BookID,
		Description:   model.Description,
		Publisher:     model.Publisher,
		PublishedDate: model.PublishedDate,
		SellCount:     model.SellCount,
		StockCount:    model.StockCount,
	}
}

// toDetailModel 领域实体 → GORM模型
func toDetailModel(d *book.BookDetail) *BookDetailModel {
	return &BookDetailModel{
		ID:            d.ID,
		BookID:        d.BookID,
		Description:   d.Description,
		Publisher:     d.Publisher,
		PublishedDate: d.PublishedDate,
		SellCount:     d.SellCount,
		StockCount:    d.StockCount,
	}
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
