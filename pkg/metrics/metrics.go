// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分类
//
// **1. HTTP指标**：由middleware.Metrics()统一记录
//   - http_requests_total{method,path,status}（Counter）
//   - http_request_duration_seconds{method,path}（Histogram）
//   - http_requests_in_progress（Gauge）
//
// **2. 图书业务指标**：由application层用例记录
//   - book_operations_total{operation,result}（Counter）
//   - book_operation_duration_seconds{operation}（Histogram）
//
// # 使用示例
//
//	// 1. 启动时初始化（重复调用是安全的）
//	metrics.InitMetrics()
//
//	// 2. 在路由上暴露/metrics端点
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 在用例中记录业务指标
//	start := time.Now()
//	b, err := svc.CreateBook(ctx, params)
//	metrics.ObserveBookOperation(metrics.OpCreate, err, time.Since(start))
//
// # 命名规范
//
// 1. Counter以`_total`结尾
// 2. Histogram以单位结尾（`_seconds`）
// 3. 标签只使用有限取值的维度：path使用路由模板（/books/:id）而不是真实URL，避免高基数
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 图书操作名（book_operations_total的operation标签）
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// 操作结果（result标签）
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// initOnce 防止重复注册（promauto重复注册会panic）
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/books/:id）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// BookOperationsTotal 图书操作总数（Counter）
	// 标签：operation（list/get/create/update/delete）、result（success/failure）
	BookOperationsTotal *prometheus.CounterVec

	// BookOperationDuration 图书操作耗时（Histogram）
	BookOperationDuration *prometheus.HistogramVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 设计要点：
// 1. 使用promauto.New*自动注册到默认Registry
// 2. Counter使用*Vec支持标签（多维度统计）
// 3. 图书操作都是单库事务，桶比HTTP耗时更细
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BookOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_operations_total",
				Help: "图书操作总数",
			},
			[]string{"operation", "result"},
		)

		BookOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "book_operation_duration_seconds",
				Help:    "图书操作耗时（秒）",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		)
	})
}

// ObserveBookOperation 记录一次图书操作的结果与耗时
// err为nil记为success，否则记为failure
func ObserveBookOperation(operation string, err error, d time.Duration) {
	InitMetrics()

	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}

	IncCounterVec(BookOperationsTotal, map[string]string{
		"operation": operation,
		"result":    result,
	})
	ObserveHistogramVec(BookOperationDuration, map[string]string{
		"operation": operation,
	}, d.Seconds())
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
