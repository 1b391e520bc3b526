package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func candidateWith(title, brand, maker string) Candidate {
	return Candidate{Title: title, Brand: brand, Maker: maker}
}

func TestIsValidMatch_Accepts(t *testing.T) {
	tests := []struct {
		name         string
		manufacturer string
		product      string
		candidate    Candidate
	}{
		{
			"manufacturer in maker field",
			"코스맥스", "메가비타민",
			candidateWith("메가비타민 1000mg 120정", "", "코스맥스"),
		},
		{
			"manufacturer in title",
			"종근당", "락토핏 생유산균 골드",
			candidateWith("종근당건강 락토핏 생유산균 골드 50포", "", ""),
		},
		{
			"short manufacturer passes automatically",
			"a", "루테인",
			candidateWith("눈건강 루테인 지아잔틴", "", "전혀다른회사"),
		},
		{
			"corporate suffix stripped before comparison",
			"주식회사 코스맥스", "메가비타민",
			candidateWith("메가비타민", "코스맥스", ""),
		},
		{
			"spaced manufacturer matched via fused tokens",
			"코스 맥스 바이오", "메가비타민",
			candidateWith("코스맥스 메가비타민 골드", "", ""),
		},
		{
			"product name ignores whitespace differences",
			"코스맥스", "메가 비타민",
			candidateWith("메가비타민 플러스", "코스맥스", ""),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsValidMatch(tt.manufacturer, tt.product, tt.candidate))
		})
	}
}

func TestIsValidMatch_Rejects(t *testing.T) {
	tests := []struct {
		name         string
		manufacturer string
		product      string
		candidate    Candidate
	}{
		{
			"neither manufacturer nor product present",
			"코스맥스", "메가비타민",
			candidateWith("전혀다른 제품 60정", "타사브랜드", "남의회사"),
		},
		{
			"manufacturer matches but product does not",
			"코스맥스", "메가비타민",
			candidateWith("코스맥스 루테인 지아잔틴", "", ""),
		},
		{
			"product matches but manufacturer does not",
			"코스맥스", "메가비타민",
			candidateWith("메가비타민 1000mg", "", "남의회사"),
		},
		{
			"product name normalizes to empty",
			"코스맥스", "(  )",
			candidateWith("코스맥스 메가비타민", "", ""),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsValidMatch(tt.manufacturer, tt.product, tt.candidate))
		})
	}
}
