package book_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appbook "github.com/xiebiao/bookapi/internal/application/book"
	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/database/dbtest"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

type useCases struct {
	list   *appbook.ListBooksUseCase
	get    *appbook.GetBookUseCase
	create *appbook.CreateBookUseCase
	update *appbook.UpdateBookUseCase
	delete *appbook.DeleteBookUseCase
	logs   *observer.ObservedLogs
}

func newUseCases(t *testing.T) *useCases {
	db := dbtest.New(t)
	svc := book.NewService(database.NewBookRepository(db), database.NewTxManager(db))

	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	return &useCases{
		list:   appbook.NewListBooksUseCase(svc, log),
		get:    appbook.NewGetBookUseCase(svc, log),
		create: appbook.NewCreateBookUseCase(svc, log),
		update: appbook.NewUpdateBookUseCase(svc, log),
		delete: appbook.NewDeleteBookUseCase(svc, log),
		logs:   logs,
	}
}

func TestCreateBookUseCase(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	t.Run("日期按YYYY-MM-DD输出", func(t *testing.T) {
		item, err := uc.create.Execute(ctx, appbook.CreateBookRequest{
			Title:  "Harry Potter",
			Author: "J.K. Rowling",
			Detail: &appbook.CreateDetailRequest{
				Description:   "The first book",
				Publisher:     "Bloomsbury",
				PublishedDate: "1997-06-26",
				StockCount:    10,
			},
		})
		require.NoError(t, err)
		require.NotNil(t, item.Detail)
		require.NotNil(t, item.Detail.PublishedDate)
		assert.Equal(t, "1997-06-26", *item.Detail.PublishedDate)
		assert.Equal(t, 10, item.Detail.StockCount)
	})

	t.Run("非法日期返回400", func(t *testing.T) {
		_, err := uc.create.Execute(ctx, appbook.CreateBookRequest{
			Title:  "T",
			Author: "A",
			Detail: &appbook.CreateDetailRequest{Publisher: "P", PublishedDate: "26/06/1997"},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("缺少出版日期返回400", func(t *testing.T) {
		_, err := uc.create.Execute(ctx, appbook.CreateBookRequest{
			Title:  "T",
			Author: "A",
			Detail: &appbook.CreateDetailRequest{Publisher: "P"},
		})
		assert.Equal(t, book.ErrPublishedDateRequired, err)
	})
}

func TestGetBookUseCase_LogsFetchedBook(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	created, err := uc.create.Execute(ctx, appbook.CreateBookRequest{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	item, err := uc.get.Execute(ctx, int64(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Dune", item.Title)
	assert.Nil(t, item.Detail)

	entries := uc.logs.FilterMessage("查询到图书").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "Dune", entries[0].ContextMap()["title"])
}

func TestUpdateBookUseCase(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	created, err := uc.create.Execute(ctx, appbook.CreateBookRequest{Title: "T", Author: "A"})
	require.NoError(t, err)

	t.Run("按需创建的详情日期为null", func(t *testing.T) {
		item, err := uc.update.Execute(ctx, int64(created.ID), appbook.UpdateBookRequest{
			Detail: &appbook.UpdateDetailRequest{SellCount: intPtr(3)},
		})
		require.NoError(t, err)
		require.NotNil(t, item.Detail)
		assert.Nil(t, item.Detail.PublishedDate)
		assert.Equal(t, 3, item.Detail.SellCount)
		assert.Equal(t, "", item.Detail.Publisher)
	})

	t.Run("补上出版日期", func(t *testing.T) {
		item, err := uc.update.Execute(ctx, int64(created.ID), appbook.UpdateBookRequest{
			Title:  strPtr("T2"),
			Detail: &appbook.UpdateDetailRequest{PublishedDate: strPtr("2020-02-29")},
		})
		require.NoError(t, err)
		assert.Equal(t, "T2", item.Title)
		require.NotNil(t, item.Detail.PublishedDate)
		assert.Equal(t, "2020-02-29", *item.Detail.PublishedDate)
		assert.Equal(t, 3, item.Detail.SellCount)
	})

	t.Run("非法日期返回400", func(t *testing.T) {
		_, err := uc.update.Execute(ctx, int64(created.ID), appbook.UpdateBookRequest{
			Detail: &appbook.UpdateDetailRequest{PublishedDate: strPtr("2021-02-30")},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}

func TestListAndDeleteUseCases(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	resp, err := uc.list.Execute(ctx, appbook.ListBooksRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
	assert.NotNil(t, resp.Items, "空列表应为[]而不是null")

	created, err := uc.create.Execute(ctx, appbook.CreateBookRequest{Title: "T", Author: "A"})
	require.NoError(t, err)

	resp, err = uc.list.Execute(ctx, appbook.ListBooksRequest{Author: "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)

	require.NoError(t, uc.delete.Execute(ctx, int64(created.ID)))
	assert.ErrorIs(t, uc.delete.Execute(ctx, int64(created.ID)), apperrors.ErrNotFound)

	_, err = uc.get.Execute(ctx, int64(created.ID))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
