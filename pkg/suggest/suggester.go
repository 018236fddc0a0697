package suggest

import "strings"

const (
	// SuggestionLimit bounds the number of words Suggest returns.
	SuggestionLimit = 3

	// FuzzyMaxDistance is the edit budget for the fuzzy fallback stage.
	FuzzyMaxDistance = 1
)

// Suggester composes the three search modes into a single ranked
// suggestion list. It is a stateless policy layer over a Trie; all
// learning happens on the index itself.
type Suggester struct {
	index *Trie
}

// NewSuggester wraps an index.
func NewSuggester(index *Trie) *Suggester {
	return &Suggester{index: index}
}

// Suggest returns at most SuggestionLimit distinct words for the typed
// input, in a fixed priority order:
//
//  1. exact matches — if the index already has SuggestionLimit or more,
//     the later stages never run
//  2. prefix matches not already present
//  3. fuzzy matches within FuzzyMaxDistance, not already present
//
// Each later stage only runs while the budget is unmet. Blank input
// returns nothing.
func (s *Suggester) Suggest(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	exact := s.index.SearchExact(input)
	if len(exact) >= SuggestionLimit {
		return exact[:SuggestionLimit]
	}

	results := make([]string, 0, SuggestionLimit)
	seen := make(map[string]bool, SuggestionLimit)
	for _, word := range exact {
		results = append(results, word)
		seen[word] = true
	}

	for _, word := range s.index.SearchPrefix(input) {
		if len(results) >= SuggestionLimit {
			break
		}
		if seen[word] {
			continue
		}
		results = append(results, word)
		seen[word] = true
	}

	if len(results) < SuggestionLimit {
		for _, word := range s.index.SearchFuzzy(input, FuzzyMaxDistance) {
			if len(results) >= SuggestionLimit {
				break
			}
			if seen[word] {
				continue
			}
			results = append(results, word)
			seen[word] = true
		}
	}

	return results
}
