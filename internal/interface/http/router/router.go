package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookapi/docs" // 注册swagger文档
	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/internal/interface/http/dto"
	"github.com/xiebiao/bookapi/internal/interface/http/handler"
	"github.com/xiebiao/bookapi/internal/interface/http/middleware"
	"github.com/xiebiao/bookapi/pkg/response"
)

// New 创建并配置Gin引擎
// 中间件顺序:Recovery → Tracing → Logger → Metrics → CORS
// Recovery放在最外层,保证任何中间件panic都输出ERR_500信封
func New(cfg *config.Config, log *zap.Logger, bookHandler *handler.BookHandler) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	dto.RegisterValidation()

	r := gin.New()
	r.Use(
		middleware.Recovery(log),
		middleware.Tracing(),
		middleware.Logger(log),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	)

	// 未匹配的路由也使用统一信封
	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithCode(c, 404, "Route not found")
	})

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.SuccessWithMessage(c, "pong")
	})

	// Prometheus指标
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// Swagger文档:http://localhost:8000/swagger/index.html
	// 生产环境建议禁用或添加访问控制
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerBookRoutes(r, bookHandler)

	return r
}

// registerBookRoutes 注册图书路由
// 集合路由同时注册/books与/books/,两种写法都直接命中,不走重定向
func registerBookRoutes(r *gin.Engine, h *handler.BookHandler) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/", h.ListBooks)
		books.POST("", h.CreateBook)
		books.POST("/", h.CreateBook)

		books.GET("/:id", h.GetBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}
