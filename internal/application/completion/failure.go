package completion

import (
	"context"
	"errors"
	"net"
	"strings"
)

// FailureReason 补全失败的粗粒度原因，用于日志与追踪标签
type FailureReason string

const (
	FailureAuth      FailureReason = "auth"
	FailureRateLimit FailureReason = "rate_limit"
	FailureTimeout   FailureReason = "timeout"
	FailureNetwork   FailureReason = "network"
	FailureConfig    FailureReason = "config"
	FailureResponse  FailureReason = "bad_response"
	FailureOther     FailureReason = "other"
)

// ClassifyFailure 根据错误类型与错误文本归类失败原因
func ClassifyFailure(err error) FailureReason {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return FailureTimeout
		}
		return FailureNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"), strings.Contains(msg, "401"), strings.Contains(msg, "unauthorized"):
		return FailureAuth
	case strings.Contains(msg, "429"), strings.Contains(msg, "rate limit"), strings.Contains(msg, "quota"):
		return FailureRateLimit
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return FailureTimeout
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"), strings.Contains(msg, "dial tcp"):
		return FailureNetwork
	case strings.Contains(msg, "provider") && strings.Contains(msg, "not found"):
		return FailureConfig
	case strings.Contains(msg, "empty llm response"), strings.Contains(msg, "failed to parse"), strings.Contains(msg, "unmarshal"):
		return FailureResponse
	default:
		return FailureOther
	}
}
