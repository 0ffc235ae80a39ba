package eino

import (
	"context"
	"errors"
	"testing"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"tweetcraft-ai-api/internal/domain/service"
	"tweetcraft-ai-api/pkg/metrics"
)

func TestChatModelHandlerRecordsSuccess(t *testing.T) {
	h := newChatModelCallbackHandler()
	ctx := service.WithProvider(service.WithWorkflow(context.Background(), "handler_test_ok"), "groq")
	info := &einocb.RunInfo{Name: "completion", Type: "groq"}

	ctx = h.OnStart(ctx, info, &model.CallbackInput{Config: &model.Config{Model: "llama3-8b-8192"}})
	assert.Greater(t, elapsedSeconds(ctx), -1.0)
	assert.Equal(t, "llama3-8b-8192", modelFromContext(ctx))

	h.OnEnd(ctx, info, &model.CallbackOutput{
		TokenUsage: &model.TokenUsage{PromptTokens: 40, CompletionTokens: 60, TotalTokens: 100},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.LLMCallTotal.WithLabelValues("handler_test_ok", "groq", "llama3-8b-8192", "success")))
	assert.Equal(t, 40.0, testutil.ToFloat64(metrics.LLMTokensUsed.WithLabelValues("handler_test_ok", "groq", "llama3-8b-8192", "prompt")))
	assert.Equal(t, 60.0, testutil.ToFloat64(metrics.LLMTokensUsed.WithLabelValues("handler_test_ok", "groq", "llama3-8b-8192", "completion")))
}

func TestChatModelHandlerRecordsError(t *testing.T) {
	h := newChatModelCallbackHandler()
	ctx := service.WithProvider(service.WithWorkflow(context.Background(), "handler_test_err"), "groq")

	ctx = h.OnStart(ctx, nil, &model.CallbackInput{Config: &model.Config{Model: "llama3-8b-8192"}})
	h.OnError(ctx, nil, errors.New("429 rate limited"))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.LLMCallTotal.WithLabelValues("handler_test_err", "groq", "llama3-8b-8192", "error")))
}

func TestElapsedSecondsWithoutStart(t *testing.T) {
	assert.Zero(t, elapsedSeconds(context.Background()))
	assert.Empty(t, modelNameFromInput(nil))
	assert.Empty(t, modelNameFromOutput(&model.CallbackOutput{}))
}

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}
