//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 依赖链:
// *App 需要 → *gin.Engine
// *gin.Engine 需要 → *handler.BookHandler
// *handler.BookHandler 需要 → 5个图书用例
// 用例 需要 → book.Service
// book.Service 需要 → book.Repository + book.Transactor
// Repository/TxManager 需要 → *gorm.DB
// *gorm.DB 需要 → *config.Config + *zap.Logger(返回cleanup关闭连接池)

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookapi/internal/application/book"
	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/database"
	"github.com/xiebiao/bookapi/internal/interface/http/handler"
	"github.com/xiebiao/bookapi/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	database.NewDB,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	database.NewBookRepository,
	database.NewTxManager,
	wire.Bind(new(book.Transactor), new(*database.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
)

// interfaceSet HTTP层依赖
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,
	router.New,
)

// InitializeApp 初始化整个应用
// 配置和日志由main提前创建(启动失败也需要日志),作为参数传入
func InitializeApp(cfg *config.Config, log *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
