package recommend

import (
	"context"
	"fmt"
	"log"
	"time"
)

// TextGenerator is the outbound text-completion dependency.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Result is one chatbot answer: the generated (or error) text plus the
// candidates that informed it, so the UI can render product cards.
type Result struct {
	Reply      string   `json:"reply"`
	Candidates []Scored `json:"candidates"`
}

// Service turns free-text user input into a product recommendation.
type Service struct {
	generator TextGenerator
	timeout   time.Duration
}

// NewService creates a recommendation service. timeout bounds each
// generation call; zero means 30 seconds.
func NewService(generator TextGenerator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{generator: generator, timeout: timeout}
}

// Recommend ranks the catalog against the user's input and asks the text
// model for a recommendation over the top candidates.
//
// Failures of the generation call never propagate: the reply degrades to a
// human-readable error string and the ranked candidates are still
// returned, so the chatbot endpoint always answers.
func (s *Service) Recommend(ctx context.Context, userInput string, catalog []Product) Result {
	candidates := Rank(userInput, catalog)
	if len(candidates) == 0 {
		return Result{Reply: "데이터에서 적절한 제품을 찾지 못했습니다.", Candidates: candidates}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.generator.GenerateContent(ctx, BuildPrompt(userInput, candidates))
	if err != nil {
		log.Printf("[recommend] generation failed: %v", err)
		return Result{Reply: fmt.Sprintf("오류 발생: %v", err), Candidates: candidates}
	}
	return Result{Reply: reply, Candidates: candidates}
}
