package bio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetcraft-ai-api/internal/domain/entity"
)

func TestBuildBioPromptContainsEverySelection(t *testing.T) {
	for _, vibe := range entity.Vibes() {
		for _, length := range entity.LengthBands() {
			for _, hashtags := range []bool{false, true} {
				for _, emojis := range []bool{false, true} {
					req := entity.BioRequest{
						Topic:           "Rock Climbing",
						Vibe:            vibe,
						Length:          length,
						IncludeHashtags: hashtags,
						IncludeEmojis:   emojis,
					}
					got, err := BuildBioPrompt(req)
					require.NoError(t, err)

					assert.Contains(t, got, "Rock Climbing")
					assert.Contains(t, got, "with a "+string(vibe)+" vibe")
					assert.Contains(t, got, "Separate each bio with '|||'.")

					clauses := 0
					for _, other := range entity.LengthBands() {
						if strings.Contains(got, other.Clause()) {
							clauses++
							assert.Equal(t, length, other)
						}
					}
					assert.Equal(t, 1, clauses, "exactly one length clause")

					if hashtags {
						assert.Contains(t, got, " and include hashtags.")
						assert.NotContains(t, got, "not include hashtags")
					} else {
						assert.Contains(t, got, "not include hashtags")
					}
					if emojis {
						assert.Contains(t, got, "Include relevant emojis")
						assert.NotContains(t, got, "Do not include emojis")
					} else {
						assert.Contains(t, got, "Do not include emojis")
						assert.NotContains(t, got, "Include relevant emojis")
					}
				}
			}
		}
	}
}

func TestBuildBioPromptExactText(t *testing.T) {
	got, err := BuildBioPrompt(entity.BioRequest{
		Topic:         "Data Scientist",
		Vibe:          entity.VibeProfessional,
		Length:        entity.LengthShort,
		IncludeEmojis: true,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Generate 3 unique Twitter bios for someone who is into Data Scientist with a Professional vibe.\n"+
			"Each bio should be under 100 characters and not include hashtags.\n"+
			"Include relevant emojis.\n"+
			"Separate each bio with '|||'.",
		got)
}

func TestBuildBioPromptIsDeterministic(t *testing.T) {
	req := entity.BioRequest{Topic: "Baking", Vibe: entity.VibeHumorous, Length: entity.LengthLong, IncludeHashtags: true}
	first, err := BuildBioPrompt(req)
	require.NoError(t, err)
	second, err := BuildBioPrompt(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildBioPromptPassesTopicThrough(t *testing.T) {
	long := strings.Repeat("very long topic ", 100)
	got, err := BuildBioPrompt(entity.BioRequest{Topic: long, Vibe: entity.VibeCreative, Length: entity.LengthMedium})
	require.NoError(t, err)
	assert.Contains(t, got, long)
}

func TestSingleShapePrompts(t *testing.T) {
	tips, err := BuildTipsPrompt("Data Scientist", entity.VibeTechnical)
	require.NoError(t, err)
	assert.Equal(t, "Give 3 quick tips for improving a Twitter bio for someone in Data Scientist with a Technical vibe.", tips)

	built, err := BuildBuilderPrompt("Nurse", "Ran 3 marathons", "Pottery")
	require.NoError(t, err)
	assert.Equal(t, "Create a concise Twitter bio incorporating these elements: Role: Nurse, Achievement: Ran 3 marathons, Interest: Pottery. Make it engaging and under 160 characters.", built)

	analysis, err := BuildAnalysisPrompt("Coffee first, code second ☕")
	require.NoError(t, err)
	assert.Equal(t, "Analyze this Twitter bio and provide 3 specific suggestions for improvement:\n\nCoffee first, code second ☕", analysis)

	trends, err := BuildTrendPrompt(entity.TrendBusiness)
	require.NoError(t, err)
	assert.Equal(t, "Provide 3 current trends for Twitter bios in the Business category.", trends)
}

func TestSplitBios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "a|||b|||c", []string{"a", "b", "c"}},
		{"trims whitespace", " a |||b||| c ", []string{"a", "b", "c"}},
		{"no delimiter", "only one", []string{"only one"}},
		{"drops blank segments", "a||| |||c", []string{"a", "c"}},
		{"more than three", "a|||b|||c|||d", []string{"a", "b", "c", "d"}},
		{"multi-line bios", "1. Bio A\n|||\n2. Bio B", []string{"1. Bio A", "2. Bio B"}},
		{"empty", "", []string{}},
		{"only delimiters", "||||||", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitBios(tc.in))
		})
	}
}
