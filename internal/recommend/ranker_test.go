package recommend

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Product {
	return []Product{
		{Name: "실리마린정", Function: "간 건강에 도움", ShapeInfo: "정제", Usage: "1일 1정"},
		{Name: "비타민C", Function: "피로회복", ShapeInfo: "캡슐", Usage: "1일 2캡슐"},
		{Name: "루테인 골드", Function: "눈 건강에 도움을 줄 수 있음", ShapeInfo: "캡슐", Usage: "1일 1캡슐"},
		{Name: "오메가3", Function: "혈행 개선에 도움", ShapeInfo: "연질캡슐", Usage: "1일 2캡슐"},
		{Name: "프로바이오틱스", Function: "장 건강, 배변활동 원활", ShapeInfo: "분말", Usage: "1일 1포"},
		{Name: "밀크씨슬", Function: "간건강 및 피로 개선에 도움", ShapeInfo: "정제", Usage: "1일 1정"},
	}
}

func TestRank_ReturnsAtMostFiveNonIncreasing(t *testing.T) {
	ranked := Rank("피로 간건강", testCatalog())

	require.LessOrEqual(t, len(ranked), 5)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score, "scores must be non-increasing")
	}

	// Every positive-score candidate contains one of the keywords verbatim.
	for _, c := range ranked {
		if c.Score > 0 {
			hit := strings.Contains(c.Function, "피로") || strings.Contains(c.Name, "피로") ||
				strings.Contains(c.Function, "간건강") || strings.Contains(c.Name, "간건강")
			assert.True(t, hit, "scored candidate %q must contain a keyword", c.Name)
		}
	}
}

func TestRank_ScoringWeights(t *testing.T) {
	catalog := []Product{
		{Name: "피로회복제", Function: "피로 개선"},     // function +2, name +1
		{Name: "비타민", Function: "피로 개선에 도움"}, // function +2
		{Name: "피로엔", Function: "눈 건강"},         // name +1
		{Name: "루테인", Function: "눈 건강"},         // no hit
	}

	ranked := Rank("피로", catalog)
	require.Len(t, ranked, 4)

	byName := map[string]int{}
	for _, c := range ranked {
		byName[c.Name] = c.Score
	}
	assert.Equal(t, 3, byName["피로회복제"])
	assert.Equal(t, 2, byName["비타민"])
	assert.Equal(t, 1, byName["피로엔"])
	assert.Equal(t, 0, byName["루테인"])
	assert.Equal(t, "피로회복제", ranked[0].Name)
}

func TestRank_SingleRuneKeywordsIgnored(t *testing.T) {
	// "간이 피곤해" splits into "간이" and "피곤해"; the single rune "간"
	// never becomes a keyword on its own, so a product whose function only
	// says "간 건강에 도움" does not match: the scorer is substring-level,
	// not semantic.
	catalog := []Product{
		{Name: "실리마린정", Function: "간 건강에 도움", ShapeInfo: "정제", Usage: "1일 1정"},
		{Name: "비타민C", Function: "피로회복", ShapeInfo: "캡슐", Usage: "1일 2캡슐"},
	}

	ranked := Rank("간이 피곤해", catalog)
	require.Len(t, ranked, 2)
	for _, c := range ranked {
		assert.Equal(t, 0, c.Score, "%q must not score: no 2+ rune token appears verbatim", c.Name)
	}

	// With a verbatim 2+ rune token the same product does score.
	ranked = Rank("간 피로회복", catalog)
	byName := map[string]int{}
	for _, c := range ranked {
		byName[c.Name] = c.Score
	}
	assert.Equal(t, 0, byName["실리마린정"], `"간" is one rune and filtered`)
	assert.Equal(t, 2, byName["비타민C"], `"피로회복" appears in the function text`)
}

func TestRank_EmptyCatalog(t *testing.T) {
	assert.Empty(t, Rank("피로 간건강", nil))
	assert.Empty(t, Rank("피로 간건강", []Product{}))
}

func TestRank_ZeroScoreProductsAreKept(t *testing.T) {
	catalog := []Product{
		{Name: "루테인", Function: "눈 건강"},
		{Name: "오메가3", Function: "혈행 개선"},
	}
	ranked := Rank("관계없는 검색어", catalog)
	assert.Len(t, ranked, 2, "zero-score products stay in the candidate pool")
}

func TestRank_TiesAreShuffled(t *testing.T) {
	// Twenty identical-score products: over repeated runs the first slot
	// should not always hold the same product.
	catalog := make([]Product, 20)
	for i := range catalog {
		catalog[i] = Product{Name: fmt.Sprintf("제품%d", i), Function: "기능 없음"}
	}

	seen := map[string]bool{}
	for run := 0; run < 50; run++ {
		ranked := Rank("무관한 입력", catalog)
		require.Len(t, ranked, 5)
		seen[ranked[0].Name] = true
	}
	assert.Greater(t, len(seen), 1, "tie order must be randomized, not insertion order")
}
