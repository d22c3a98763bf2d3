package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// SuccessTag 成功响应中error字段的固定取值
const SuccessTag = "success"

// Response 统一响应结构
// 设计说明：
// 1. Error成功时为"success"，失败时为"ERR_<HTTP状态码>"
// 2. Detail成功时是业务数据或提示文案，失败时是错误提示
// 3. 所有接口共用同一个信封，客户端只需判断error字段
type Response struct {
	Error  string      `json:"error"`
	Detail interface{} `json:"detail"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Error:  SuccessTag,
		Detail: data,
	})
}

// SuccessWithMessage 成功响应（detail为文案，无业务数据）
func SuccessWithMessage(c *gin.Context, message string) {
	Success(c, message)
}

// Error 错误响应（自动处理AppError）
// 这是唯一的"错误类型 → 响应体"转换入口，Handler和Recovery中间件都走这里
// 用法：
//
//	b, err := bookService.GetBook(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 提取AppError（非AppError统一视为500）
	appErr := apperrors.GetAppError(err)

	// 服务端错误记录内部原因，客户端只看到Message
	if appErr.Code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", appErr.Code),
			zap.Error(err),
		)
	}

	ErrorWithCode(c, appErr.Code, appErr.Message)
}

// ErrorWithCode 自定义状态码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Error:  ErrorTag(code),
		Detail: message,
	})
}

// ErrorTag 生成错误标识，如404 → "ERR_404"
func ErrorTag(code int) string {
	return fmt.Sprintf("ERR_%d", code)
}

// =========================================
// 业务数据结构
// =========================================

// ItemData 单条数据封装（get/create/update）
type ItemData struct {
	Item interface{} `json:"item"`
}

// SuccessWithItem 单条数据成功响应
func SuccessWithItem(c *gin.Context, item interface{}) {
	Success(c, ItemData{Item: item})
}

// PageData 分页数据封装
type PageData struct {
	Total int64       `json:"total"` // 过滤后的总记录数（分页前）
	Items interface{} `json:"items"` // 当前页数据
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, items interface{}, total int64) {
	Success(c, PageData{
		Total: total,
		Items: items,
	})
}
