package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthBandClause(t *testing.T) {
	assert.Equal(t, "under 100 characters", LengthShort.Clause())
	assert.Equal(t, "100-140 characters", LengthMedium.Clause())
	assert.Equal(t, "140-160 characters", LengthLong.Clause())
	assert.Equal(t, "", LengthBand("Huge").Clause())
	assert.False(t, LengthBand("Huge").IsValid())
	assert.Equal(t, "Short (under 100 characters)", LengthShort.Label())
}

func TestParseLengthBand(t *testing.T) {
	for _, in := range []string{"Short", "short", " Short (under 100 characters) "} {
		got, ok := ParseLengthBand(in)
		assert.True(t, ok, in)
		assert.Equal(t, LengthShort, got, in)
	}
	_, ok := ParseLengthBand("tiny")
	assert.False(t, ok)
}

func TestParseVibe(t *testing.T) {
	got, ok := ParseVibe("humorous")
	assert.True(t, ok)
	assert.Equal(t, VibeHumorous, got)

	_, ok = ParseVibe("")
	assert.False(t, ok)
	assert.False(t, Vibe("Grumpy").IsValid())
	assert.Len(t, Vibes(), 5)
}

func TestParseTrendCategory(t *testing.T) {
	got, ok := ParseTrendCategory("lifestyle")
	assert.True(t, ok)
	assert.Equal(t, TrendLifestyle, got)

	_, ok = ParseTrendCategory("Sports")
	assert.False(t, ok)
}
