package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_RemovesParentheticals(t *testing.T) {
	assert.Equal(t, "비타민C 1000mg", Normalize("(포도맛) 비타민C 1000mg"))
}

func TestNormalize_RemovesBrackets(t *testing.T) {
	assert.Equal(t, "루테인 골드", Normalize("[본사직영] 루테인 골드"))
}

func TestNormalize_RemovesCorporateSuffixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading", "주식회사 한미양행", "한미양행"},
		{"trailing", "콜마비앤에이치 주식회사", "콜마비앤에이치"},
		{"yuhan", "유한회사 뉴트리", "뉴트리"},
		{"farm corp", "농업회사법인 자연애", "자연애"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_ReplacesSymbolsWithSpace(t *testing.T) {
	assert.Equal(t, "오메가3  트리플", Normalize("오메가3: 트리플!"))
	assert.Equal(t, "츄어블 타임", Normalize("츄어블&타임"))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize("(전부 괄호)"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"(포도맛) 비타민C 1000mg",
		"[특가] 주식회사 종근당 건강 락토핏 생유산균 골드!",
		"밀크씨슬 (실리마린) 500mg x 60정",
		"",
		"이미 깨끗한 문자열",
		"unmatched (paren",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}
