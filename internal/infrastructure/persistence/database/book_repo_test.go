package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/database/dbtest"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

func newRepo(t *testing.T) (book.Repository, *database.TxManager) {
	db := dbtest.New(t)
	return database.NewBookRepository(db), database.NewTxManager(db)
}

func seedBook(t *testing.T, repo book.Repository, title, author string) *book.Book {
	t.Helper()
	b := book.NewBook(title, author)
	require.NoError(t, repo.Create(context.Background(), b))
	require.NotZero(t, b.ID)
	return b
}

func TestBookRepository_CreateAndFind(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	b := seedBook(t, repo, "Go in Action", "Kennedy")

	t.Run("没有详情时Detail为nil", func(t *testing.T) {
		found, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Go in Action", found.Title)
		assert.Equal(t, "Kennedy", found.Author)
		assert.Nil(t, found.Detail)
	})

	t.Run("创建详情后预加载", func(t *testing.T) {
		date := time.Date(2015, 11, 1, 0, 0, 0, 0, time.UTC)
		d := book.NewBookDetail(b.ID, book.DetailParams{
			Description:   "intro",
			Publisher:     "Manning",
			PublishedDate: date,
			SellCount:     3,
			StockCount:    7,
		})
		require.NoError(t, repo.CreateDetail(ctx, d))
		assert.NotZero(t, d.ID)

		found, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Detail)
		assert.Equal(t, b.ID, found.Detail.BookID)
		assert.Equal(t, "Manning", found.Detail.Publisher)
		assert.Equal(t, "intro", found.Detail.Description)
		require.NotNil(t, found.Detail.PublishedDate)
		assert.Equal(t, "2015-11-01", found.Detail.PublishedDate.Format("2006-01-02"))
		assert.Equal(t, 3, found.Detail.SellCount)
		assert.Equal(t, 7, found.Detail.StockCount)
	})

	t.Run("同一本书不能有两条详情", func(t *testing.T) {
		d := &book.BookDetail{BookID: b.ID, Publisher: "Other"}
		err := repo.CreateDetail(ctx, d)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInternal))
	})

	t.Run("不存在的图书", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 99999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)

		_, err = repo.LockByID(ctx, 99999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)

		_, err = repo.FindDetailByBookID(ctx, 99999)
		assert.ErrorIs(t, err, book.ErrDetailNotFound)
	})
}

func TestBookRepository_Update(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	b := seedBook(t, repo, "Old", "Someone")
	d := &book.BookDetail{BookID: b.ID, Publisher: "P", SellCount: 5, StockCount: 9}
	require.NoError(t, repo.CreateDetail(ctx, d))

	b.Title = "New"
	require.NoError(t, repo.Update(ctx, b))

	// 零值也必须写入
	d.SellCount = 0
	d.Description = ""
	require.NoError(t, repo.UpdateDetail(ctx, d))

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", found.Title)
	assert.Equal(t, "Someone", found.Author)
	require.NotNil(t, found.Detail)
	assert.Equal(t, 0, found.Detail.SellCount)
	assert.Equal(t, 9, found.Detail.StockCount)
	assert.Nil(t, found.Detail.PublishedDate)
}

func TestBookRepository_Delete(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	b := seedBook(t, repo, "Doomed", "Nobody")
	require.NoError(t, repo.CreateDetail(ctx, &book.BookDetail{BookID: b.ID, Publisher: "P"}))

	require.NoError(t, repo.DeleteDetailByBookID(ctx, b.ID))
	// 没有详情时再删一次不报错
	require.NoError(t, repo.DeleteDetailByBookID(ctx, b.ID))

	require.NoError(t, repo.Delete(ctx, b.ID))
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), book.ErrBookNotFound)

	_, err := repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookRepository_List(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	seedBook(t, repo, "Harry Potter", "Rowling")
	seedBook(t, repo, "The Hobbit", "Tolkien")
	seedBook(t, repo, "Potter's Field", "Peters")
	seedBook(t, repo, "100% Go", "Anon_Author")

	tests := []struct {
		name      string
		params    book.ListParams
		wantTotal int64
		wantTitle []string
	}{
		{
			name:      "无过滤条件返回全部",
			params:    book.ListParams{Limit: 10},
			wantTotal: 4,
			wantTitle: []string{"Harry Potter", "The Hobbit", "Potter's Field", "100% Go"},
		},
		{
			name:      "书名不区分大小写",
			params:    book.ListParams{Title: "POTTER", Limit: 10},
			wantTotal: 2,
			wantTitle: []string{"Harry Potter", "Potter's Field"},
		},
		{
			name:      "title与author为或关系",
			params:    book.ListParams{Title: "hobbit", Author: "rowling", Limit: 10},
			wantTotal: 2,
			wantTitle: []string{"Harry Potter", "The Hobbit"},
		},
		{
			name:      "通配符按字面量匹配",
			params:    book.ListParams{Title: "%", Limit: 10},
			wantTotal: 1,
			wantTitle: []string{"100% Go"},
		},
		{
			name:      "下划线按字面量匹配",
			params:    book.ListParams{Author: "_", Limit: 10},
			wantTotal: 1,
			wantTitle: []string{"100% Go"},
		},
		{
			name:      "总数不受分页影响",
			params:    book.ListParams{Offset: 1, Limit: 2},
			wantTotal: 4,
			wantTitle: []string{"The Hobbit", "Potter's Field"},
		},
		{
			name:      "偏移超过总数返回空页",
			params:    book.ListParams{Offset: 10, Limit: 10},
			wantTotal: 4,
			wantTitle: []string{},
		},
		{
			name:      "没有匹配",
			params:    book.ListParams{Title: "nonexistent", Limit: 10},
			wantTotal: 0,
			wantTitle: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, total, err := repo.List(ctx, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			titles := make([]string, len(books))
			for i, b := range books {
				titles[i] = b.Title
			}
			assert.Equal(t, tt.wantTitle, titles)
		})
	}
}

func TestTxManager_Rollback(t *testing.T) {
	repo, tx := newRepo(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tx.Transaction(ctx, func(txCtx context.Context) error {
		b := book.NewBook("Ghost", "Nobody")
		if err := repo.Create(txCtx, b); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, total, err := repo.List(ctx, book.ListParams{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total, "回滚后不应留下图书")
}
