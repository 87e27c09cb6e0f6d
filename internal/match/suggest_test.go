package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestNames(t *testing.T) {
	candidates := []string{"title", "body", "publishedAt", "updatedAt", "wordCount"}

	got := SuggestNames("titel", candidates, DefaultMinScore, DefaultMaxSuggestions)
	assert.Equal(t, []string{"title"}, got)

	got = SuggestNames("published_at", candidates, DefaultMinScore, DefaultMaxSuggestions)
	assert.Contains(t, got, "publishedAt")

	// Nothing close enough.
	got = SuggestNames("zzz", candidates, DefaultMinScore, DefaultMaxSuggestions)
	assert.Empty(t, got)
}

func TestSuggestNames_ExactMatchExcluded(t *testing.T) {
	got := SuggestNames("title", []string{"title", "titles"}, DefaultMinScore, DefaultMaxSuggestions)
	assert.Equal(t, []string{"titles"}, got)
}

func TestSuggestNames_DeterministicOrder(t *testing.T) {
	// Both candidates normalize to the same distance; ties break
	// alphabetically.
	candidates := []string{"viewCount", "wordCounts", "wordCount"}

	first := SuggestNames("word_count", candidates, 0.0, 3)
	for range 10 {
		assert.Equal(t, first, SuggestNames("word_count", candidates, 0.0, 3))
	}

	assert.Equal(t, "wordCount", first[0])
}

func TestSuggestNames_CapsResults(t *testing.T) {
	candidates := []string{"fieldA", "fieldB", "fieldC", "fieldD"}

	got := SuggestNames("fieldX", candidates, 0.0, 2)
	assert.Len(t, got, 2)

	assert.Nil(t, SuggestNames("", candidates, 0.0, 2))
	assert.Nil(t, SuggestNames("fieldX", nil, 0.0, 2))
	assert.Nil(t, SuggestNames("fieldX", candidates, 0.0, 0))
}
