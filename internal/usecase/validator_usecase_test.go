package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishaan-vashist/YC-News-validator/internal/entity"
)

func timedArticles(rawTimes ...string) []entity.Article {
	articles := make([]entity.Article, len(rawTimes))
	for i, raw := range rawTimes {
		articles[i] = entity.Article{
			Rank:    i + 1,
			Title:   "article",
			RawTime: raw,
		}
	}
	return articles
}

func TestValidate_NewestFirstSequence(t *testing.T) {
	v := NewValidator()

	result := v.Validate(timedArticles("5 minutes ago", "1 hour ago", "3 hours ago"))

	assert.Equal(t, 3, result.TotalArticles)
	assert.Equal(t, 2, result.ValidTransitions)
	assert.Empty(t, result.Issues)
	assert.True(t, result.IsValid)
}

func TestValidate_InvertedPair(t *testing.T) {
	v := NewValidator()

	result := v.Validate(timedArticles("1 hour ago", "5 minutes ago"))

	assert.Equal(t, 2, result.TotalArticles)
	assert.Equal(t, 0, result.ValidTransitions)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, 1, result.Issues[0].Position)
	assert.Equal(t, "1 hour ago", result.Issues[0].Current.Time)
	assert.Equal(t, "5 minutes ago", result.Issues[0].Next.Time)
	assert.False(t, result.IsValid)
}

func TestValidate_SingleInversionMidSequence(t *testing.T) {
	v := NewValidator()

	// Inversion sits between positions 2 and 3.
	result := v.Validate(timedArticles("10 minutes ago", "2 hours ago", "30 minutes ago", "3 hours ago"))

	assert.Equal(t, 2, result.ValidTransitions)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, 2, result.Issues[0].Position)
	assert.False(t, result.IsValid)
}

func TestValidate_EqualTimesAreValid(t *testing.T) {
	v := NewValidator()

	result := v.Validate(timedArticles("1 hour ago", "1 hour ago"))

	assert.Equal(t, 1, result.ValidTransitions)
	assert.Empty(t, result.Issues)
	assert.True(t, result.IsValid)
}

func TestValidate_TrivialSequences(t *testing.T) {
	v := NewValidator()

	empty := v.Validate(nil)
	assert.Equal(t, 0, empty.TotalArticles)
	assert.Equal(t, 0, empty.ValidTransitions)
	assert.True(t, empty.IsValid)

	single := v.Validate(timedArticles("1 hour ago"))
	assert.Equal(t, 1, single.TotalArticles)
	assert.Equal(t, 0, single.ValidTransitions)
	assert.True(t, single.IsValid)
}

func TestValidate_MissingAgeExcludesPairFromBothTallies(t *testing.T) {
	v := NewValidator()

	// The two pairs touching the empty age contribute to neither tally, so
	// valid transitions plus issues falls short of totalArticles-1.
	result := v.Validate(timedArticles("5 minutes ago", "", "3 hours ago"))

	assert.Equal(t, 3, result.TotalArticles)
	assert.Equal(t, 0, result.ValidTransitions)
	assert.Empty(t, result.Issues)
	assert.True(t, result.IsValid)
}

func TestValidate_UnrecognizedAgesAreVacuouslyValid(t *testing.T) {
	v := NewValidator()

	// Both sides fall back to the shared reference instant, so the
	// comparison cannot flag an inversion.
	result := v.Validate(timedArticles("just now", "some new wording"))

	assert.Equal(t, 1, result.ValidTransitions)
	assert.Empty(t, result.Issues)
	assert.True(t, result.IsValid)
}

func TestValidate_IssueTitlesAreTruncated(t *testing.T) {
	v := NewValidator()

	longTitle := strings.Repeat("x", 80)
	articles := timedArticles("1 hour ago", "5 minutes ago")
	articles[0].Title = longTitle
	articles[1].Title = "short"

	result := v.Validate(articles)
	require.Len(t, result.Issues, 1)

	assert.Equal(t, strings.Repeat("x", 50)+"...", result.Issues[0].Current.Title)
	assert.Equal(t, "short...", result.Issues[0].Next.Title)
}
