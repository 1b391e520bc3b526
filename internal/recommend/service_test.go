package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func TestRecommend_RelaysGeneratedText(t *testing.T) {
	gen := &fakeGenerator{reply: "🎁 추천 제품: 비타민C"}
	svc := NewService(gen, time.Second)

	result := svc.Recommend(context.Background(), "피로회복", testCatalog())

	assert.Equal(t, "🎁 추천 제품: 비타민C", result.Reply)
	require.NotEmpty(t, result.Candidates)
	assert.Contains(t, gen.prompt, "피로회복")
	for _, c := range result.Candidates {
		assert.Contains(t, gen.prompt, c.Name, "every candidate must be in the prompt")
	}
}

func TestRecommend_GenerationFailureBecomesErrorString(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("status 500")}
	svc := NewService(gen, time.Second)

	result := svc.Recommend(context.Background(), "피로회복", testCatalog())

	assert.True(t, strings.HasPrefix(result.Reply, "오류 발생:"), "reply was %q", result.Reply)
	assert.Contains(t, result.Reply, "status 500")
	assert.NotEmpty(t, result.Candidates, "candidates survive a failed generation")
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	gen := &fakeGenerator{reply: "should not be called"}
	svc := NewService(gen, time.Second)

	result := svc.Recommend(context.Background(), "피로회복", nil)

	assert.Equal(t, "데이터에서 적절한 제품을 찾지 못했습니다.", result.Reply)
	assert.Empty(t, result.Candidates)
	assert.Empty(t, gen.prompt, "generator must not run without candidates")
}

func TestBuildPrompt_NumbersCandidates(t *testing.T) {
	candidates := []Scored{
		{Product: Product{Name: "실리마린정", Function: "간 건강", ShapeInfo: "정제", Usage: "1일 1정"}, Score: 2},
		{Product: Product{Name: "비타민C", Function: "피로회복", ShapeInfo: "캡슐", Usage: "1일 2캡슐"}, Score: 1},
	}

	prompt := BuildPrompt("아빠 선물", candidates)
	assert.Contains(t, prompt, "[후보 1]")
	assert.Contains(t, prompt, "[후보 2]")
	assert.Contains(t, prompt, "실리마린정")
	assert.Contains(t, prompt, `"아빠 선물"`)
	assert.Contains(t, prompt, "[필수 출력 형식]")
}
