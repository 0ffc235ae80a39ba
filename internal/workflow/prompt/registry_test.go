package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryPromptResolves(t *testing.T) {
	r := NewRegistry()
	for _, id := range IDs() {
		tpl, err := r.ChatTemplate(id)
		require.NoError(t, err, id)
		require.NotNil(t, tpl, id)

		again, err := r.ChatTemplate(id)
		require.NoError(t, err)
		assert.Same(t, tpl, again, "templates are cached")
	}
}

func TestUnknownPrompt(t *testing.T) {
	_, err := NewRegistry().ChatTemplate(PromptID("nope_v9"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown prompt id")
}

func TestRenderSubstitutesVariables(t *testing.T) {
	got, err := NewRegistry().Render(context.Background(), PromptTrendsV1, map[string]any{
		"category": "Tech",
	})
	require.NoError(t, err)
	assert.Equal(t, "Provide 3 current trends for Twitter bios in the Tech category.", got)
}

func TestRenderDoesNotReinterpretValues(t *testing.T) {
	got, err := NewRegistry().Render(context.Background(), PromptAnalysisV1, map[string]any{
		"bio": "I {love} braces",
	})
	require.NoError(t, err)
	assert.Equal(t, "Analyze this Twitter bio and provide 3 specific suggestions for improvement:\n\nI {love} braces", got)
}
