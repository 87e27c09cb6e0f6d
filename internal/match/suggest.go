package match

import (
	"sort"

	"github.com/grounzero/graphql-sourcegen-sub001/internal/common"
)

// Suggestion thresholds.
const (
	// DefaultMinScore is the minimum normalized similarity for a name to
	// be offered as a suggestion.
	DefaultMinScore = 0.5
	// DefaultMaxSuggestions caps how many alternatives a diagnostic
	// carries.
	DefaultMaxSuggestions = 3
)

// scored pairs a candidate name with its similarity to the requested name.
type scored struct {
	name  string
	score float64
}

// SuggestNames ranks candidate names against the requested name and
// returns up to max alternatives scoring at least minScore, best first.
// Ties break alphabetically so output is deterministic.
func SuggestNames(name string, candidates []string, minScore float64, max int) []string {
	if name == "" || common.IsEmpty(candidates) || max <= 0 {
		return nil
	}

	ranked := make([]scored, 0, len(candidates))

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := NormalizedLevenshteinScore(name, c)
		if score >= minScore {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
