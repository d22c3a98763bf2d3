package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookapi/internal/domain/book"
)

// txKey 事务DB在context中的key(不导出,避免与其他包冲突)
type txKey struct{}

// TxManager 事务管理器
// 教学要点:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 支持嵌套事务(GORM自动使用Savepoint)
type TxManager struct {
	db *gorm.DB
}

var _ book.Transactor = (*TxManager)(nil)

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// 1. fn函数内的所有Repository操作都会在同一事务中执行
// 2. fn返回error或panic时自动ROLLBACK,返回nil时自动COMMIT
// 3. 已经处于事务中时,在外层事务上开启Savepoint
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := bookRepo.Create(ctx, b); err != nil {
//	        return err // 自动回滚
//	    }
//	    return bookRepo.CreateDetail(ctx, detail) // nil则提交
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	db := m.db
	if tx, ok := txFromContext(ctx); ok {
		db = tx
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到Context中
		// Repository的getDB方法会从context提取事务DB
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// txFromContext 从context提取事务DB
func txFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return tx, ok
}
