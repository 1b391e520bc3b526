// Package recommend implements the chatbot's product recommendation flow:
// keyword-relevance ranking over the pill catalog and natural-language
// answer generation through an external text model.
package recommend

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// Product is one catalog entry as the ranker sees it: a read-only snapshot
// passed in by the caller, never shared state.
type Product struct {
	Name      string `json:"name"`
	Function  string `json:"function"`
	ShapeInfo string `json:"shape_info"`
	Usage     string `json:"usage"`
}

// Scored is a product with its relevance score for one ranking request.
type Scored struct {
	Product
	Score int `json:"score"`
}

// topCandidates is how many products are handed to the text model.
const topCandidates = 5

// minKeywordRunes filters out single-character tokens, which in Korean are
// mostly particles and carry no signal.
const minKeywordRunes = 2

// Rank scores every catalog product against the user's free-text input and
// returns at most five candidates, best first.
//
// The input is split on whitespace; each keyword of at least two runes adds
// 2 when it appears in the product's functionality text and 1 when it
// appears in the product name. Matching is plain substring containment, not
// semantic. Zero-score products stay in the pool so the list is never
// empty while the catalog isn't: the text model gets to judge weak
// candidates itself. The pool is shuffled before the stable descending
// sort, so ties don't always resolve to whichever product was inserted
// first.
func Rank(userInput string, catalog []Product) []Scored {
	keywords := make([]string, 0)
	for _, word := range strings.Fields(userInput) {
		if len([]rune(word)) >= minKeywordRunes {
			keywords = append(keywords, word)
		}
	}

	candidates := make([]Scored, 0, len(catalog))
	for _, product := range catalog {
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(product.Function, keyword) {
				score += 2
			}
			if strings.Contains(product.Name, keyword) {
				score++
			}
		}
		candidates = append(candidates, Scored{Product: product, Score: score})
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > topCandidates {
		candidates = candidates[:topCandidates]
	}
	return candidates
}
