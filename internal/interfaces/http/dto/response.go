// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tweetcraft-ai-api/pkg/errors"
	"tweetcraft-ai-api/pkg/tracer"
)

// Response 统一响应结构
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	ErrorCode string `json:"error_code,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Details   string `json:"details,omitempty"`
}

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Error   *ErrorDetail `json:"error,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
}

// TraceID 优先取中间件写入的 trace_id，缺失时从请求 span 读取
func TraceID(c *gin.Context) string {
	if id := c.GetString("trace_id"); id != "" {
		return id
	}
	return tracer.TraceID(c.Request.Context())
}

// Success 返回成功响应
func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Response[T]{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
		TraceID: TraceID(c),
	})
}

// ErrorWithDetail 返回带详情的错误响应
func ErrorWithDetail(c *gin.Context, httpCode int, message string, detail *ErrorDetail) {
	c.JSON(httpCode, ErrorResponse{
		Code:    httpCode,
		Message: message,
		Error:   detail,
		TraceID: TraceID(c),
	})
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, message string) {
	ErrorWithDetail(c, http.StatusBadRequest, message, &ErrorDetail{
		ErrorCode: string(apperrors.CodeInvalidParam),
		Kind:      string(apperrors.KindValidation),
	})
}

// FromError 按 AppError 的状态码与大类输出错误，
// 服务错误的 details 携带底层原因供页面展示
func FromError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	detail := &ErrorDetail{
		ErrorCode: string(appErr.Code),
		Kind:      string(appErr.Kind()),
	}
	if appErr.Kind() == apperrors.KindService {
		detail.Details = appErr.Cause()
	}
	_ = c.Error(err)
	ErrorWithDetail(c, status, appErr.Message, detail)
}
