// Package errors 提供统一的错误定义
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeUnknown       ErrorCode = "1000"
	CodeInvalidParam  ErrorCode = "1001"
	CodeInternalError ErrorCode = "1007"

	// 业务错误 (4xxx)
	CodeLLMCallFailed ErrorCode = "4005"
)

// Kind 错误大类
type Kind string

const (
	KindValidation Kind = "validation_error"
	KindService    Kind = "service_error"
	KindUnknown    Kind = "unknown"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// Kind 返回错误大类
func (e *AppError) Kind() Kind {
	switch e.Code {
	case CodeInvalidParam:
		return KindValidation
	case CodeLLMCallFailed:
		return KindService
	default:
		return KindUnknown
	}
}

// Cause 返回面向用户展示的底层原因
func (e *AppError) Cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// Validation 创建校验错误
func Validation(format string, args ...any) *AppError {
	return New(CodeInvalidParam, fmt.Sprintf(format, args...))
}

// Service 将补全服务的失败包装为服务错误
func Service(err error) *AppError {
	return Wrap(err, CodeLLMCallFailed, "LLM call failed")
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeLLMCallFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}

// KindOf 返回任意错误的大类
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind()
	}
	return KindUnknown
}
