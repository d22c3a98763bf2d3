package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidation 让校验错误使用json/form字段名(如detail.publishedDate)
// 启动时调用一次
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

// BindingMessage 把绑定错误转换为客户端可读的提示
// - 校验失败:"title is required; detail.sellCount must be >= 0"
// - JSON语法/类型错误:"Invalid request body: ..."
func BindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "Invalid request body: empty body"
	case errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntaxErr):
		return "Invalid request body: malformed JSON"
	case errors.As(err, &typeErr):
		return fmt.Sprintf("Invalid request body: %s must be %s", typeErr.Field, typeErr.Type)
	}
	return "Invalid request: " + err.Error()
}

// fieldMessage 单个字段的校验提示
func fieldMessage(fe validator.FieldError) string {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must not be empty"
		}
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "datetime":
		return field + " must be in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("%s failed on '%s'", field, fe.Tag())
	}
}

// fieldPath 去掉命名空间中的顶层结构体名:CreateBookRequest.detail.publisher → detail.publisher
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
