package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code直接使用HTTP状态码（400/404/500），响应层据此生成ERR_<code>
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // HTTP状态码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误类型（错误码）匹配
// 例如：errors.Is(err, ErrNotFound) 对任何404错误都成立，不论提示信息是什么
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：错误码即HTTP状态码，响应体中的error字段为"ERR_<code>"

const (
	ErrCodeInvalidArgument = http.StatusBadRequest          // 参数错误（400）
	ErrCodeNotFound        = http.StatusNotFound            // 资源不存在（404）
	ErrCodeInternal        = http.StatusInternalServerError // 内部错误（500）
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	ErrInternal        = New(ErrCodeInternal, "Internal server error")
	ErrInvalidArgument = New(ErrCodeInvalidArgument, "Invalid argument")
	ErrNotFound        = New(ErrCodeNotFound, "Resource not found")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}

// InvalidArgument 创建400错误（携带具体的提示信息）
func InvalidArgument(message string) *AppError {
	return New(ErrCodeInvalidArgument, message)
}

// NotFound 创建404错误（携带具体的提示信息）
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}
