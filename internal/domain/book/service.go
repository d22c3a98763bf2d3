package book

import (
	"context"
	"errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装参数校验、部分更新、级联删除等业务规则
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. 写操作通过Transactor包成一个事务:图书与详情要么都成功,要么都回滚
type Service interface {
	// ListBooks 分页查询图书列表(title/author为"或"关系过滤)
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// GetBook 根据ID获取图书(包含详情)
	// 业务规则:ID必须为正整数,否则返回ErrInvalidBookID
	GetBook(ctx context.Context, id int64) (*Book, error)

	// CreateBook 创建图书,可同时创建详情
	CreateBook(ctx context.Context, params CreateParams) (*Book, error)

	// UpdateBook 部分更新图书,详情不存在时按需创建
	UpdateBook(ctx context.Context, id int64, params UpdateParams) (*Book, error)

	// DeleteBook 删除图书及其详情(先删详情,再删图书)
	DeleteBook(ctx context.Context, id int64) error
}

// service 领域服务实现
type service struct {
	repo Repository
	tx   Transactor
}

// NewService 创建图书领域服务
func NewService(repo Repository, tx Transactor) Service {
	return &service{repo: repo, tx: tx}
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params.Normalize())
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id int64) (*Book, error) {
	if id <= 0 {
		return nil, ErrInvalidBookID
	}

	b, err := s.repo.FindByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return nil, NotFoundByID(id)
		}
		return nil, err
	}
	return b, nil
}

// CreateBook 创建图书
// 流程:
// 1. 参数校验
// 2. 插入books获得ID
// 3. 如果提供了详情,插入book_details(引用第2步的ID)
// 第2、3步在同一事务中,不会出现"图书创建成功但详情丢失"
func (s *service) CreateBook(ctx context.Context, params CreateParams) (*Book, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	b := NewBook(params.Title, params.Author)

	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, b); err != nil {
			return err
		}

		if params.Detail == nil {
			return nil
		}

		detail := NewBookDetail(b.ID, *params.Detail)
		if err := s.repo.CreateDetail(txCtx, detail); err != nil {
			return err
		}
		b.Detail = detail
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// UpdateBook 部分更新图书
// 流程:
// 1. 锁定图书行(不存在返回ErrBookNotFound)
// 2. 覆盖提供的title/author
// 3. 提供了detail时:查详情,不存在则新建,再覆盖提供的子字段
// 4. 重新查询,返回最新状态
func (s *service) UpdateBook(ctx context.Context, id int64, params UpdateParams) (*Book, error) {
	// 非正整数ID不可能对应任何图书
	if id <= 0 {
		return nil, ErrBookNotFound
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var updated *Book
	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		b, err := s.repo.LockByID(txCtx, uint(id))
		if err != nil {
			return err
		}

		if b.ApplyPatch(params) {
			if err := s.repo.Update(txCtx, b); err != nil {
				return err
			}
		}

		if params.Detail != nil {
			if err := s.patchDetail(txCtx, b.ID, *params.Detail); err != nil {
				return err
			}
		}

		updated, err = s.repo.FindByID(txCtx, b.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// patchDetail 按需创建并部分更新详情
func (s *service) patchDetail(ctx context.Context, bookID uint, patch DetailPatch) error {
	detail, err := s.repo.FindDetailByBookID(ctx, bookID)
	switch {
	case errors.Is(err, ErrDetailNotFound):
		// 没有详情:新建一条,只填充本次提供的字段
		detail = &BookDetail{BookID: bookID}
	case err != nil:
		return err
	}

	detail.ApplyPatch(patch)

	if detail.IsNew() {
		return s.repo.CreateDetail(ctx, detail)
	}
	return s.repo.UpdateDetail(ctx, detail)
}

// DeleteBook 删除图书
// 顺序必须是"先详情,后图书",避免外键悬挂
func (s *service) DeleteBook(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrBookNotFound
	}

	return s.tx.Transaction(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.LockByID(txCtx, uint(id)); err != nil {
			return err
		}
		if err := s.repo.DeleteDetailByBookID(txCtx, uint(id)); err != nil {
			return err
		}
		return s.repo.Delete(txCtx, uint(id))
	})
}
