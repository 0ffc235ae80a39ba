package completion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFailure(t *testing.T) {
	cases := []struct {
		err  error
		want FailureReason
	}{
		{nil, ""},
		{fmt.Errorf("call: %w", context.DeadlineExceeded), FailureTimeout},
		{errors.New("error, status code: 401, message: Invalid API Key"), FailureAuth},
		{errors.New("api key for provider groq is not configured"), FailureAuth},
		{errors.New("status code: 429, Rate limit reached"), FailureRateLimit},
		{errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), FailureNetwork},
		{errors.New("llm provider groq not found"), FailureConfig},
		{errors.New("empty llm response"), FailureResponse},
		{errors.New("something odd"), FailureOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyFailure(tc.err), "%v", tc.err)
	}
}
