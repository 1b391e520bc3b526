// Package backfill walks the catalog and fills in purchase links from the
// shopping search API.
package backfill

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pillgood/backend/internal/db"
	"github.com/pillgood/backend/internal/matching"
)

// DefaultConcurrency bounds parallel pill lookups. The search client also
// rate limits itself, so this mostly caps in-flight DB work.
const DefaultConcurrency = 4

// Store is the persistence surface the runner needs.
type Store interface {
	PillsMissingPurchaseLink(ctx context.Context) ([]db.BackfillTarget, error)
	SavePurchaseMatch(ctx context.Context, pillID int64, match matching.PurchaseMatch) error
	MarkPurchaseNotFound(ctx context.Context, pillID int64) error
}

// Resolver finds a validated purchase link for one product.
type Resolver interface {
	ResolvePurchaseLink(ctx context.Context, productName, manufacturer string) (*matching.PurchaseMatch, error)
}

// Summary counts the outcomes of one backfill run.
type Summary struct {
	Total    int
	Matched  int
	NotFound int
	Skipped  int
}

// Runner backfills purchase links for pills that have never been searched.
type Runner struct {
	store       Store
	resolver    Resolver
	concurrency int
}

// NewRunner creates a backfill runner. concurrency <= 0 uses the default.
func NewRunner(store Store, resolver Resolver, concurrency int) *Runner {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Runner{
		store:       store,
		resolver:    resolver,
		concurrency: concurrency,
	}
}

// Run processes every unsearched pill. A resolved match is persisted, a
// definitive no-seller answer is marked with the sentinel, and transport
// failures leave the pill untouched so the next run retries it.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	targets, err := r.store.PillsMissingPurchaseLink(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load backfill targets: %w", err)
	}

	summary := &Summary{Total: len(targets)}
	if len(targets) == 0 {
		return summary, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, target := range targets {
		g.Go(func() error {
			outcome, err := r.processTarget(gctx, target)
			if err != nil {
				return err
			}
			mu.Lock()
			switch outcome {
			case outcomeMatched:
				summary.Matched++
			case outcomeNotFound:
				summary.NotFound++
			case outcomeSkipped:
				summary.Skipped++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}

	log.Printf("[backfill] done: %d total, %d matched, %d not found, %d skipped",
		summary.Total, summary.Matched, summary.NotFound, summary.Skipped)
	return summary, nil
}

type outcome int

const (
	outcomeMatched outcome = iota
	outcomeNotFound
	outcomeSkipped
)

func (r *Runner) processTarget(ctx context.Context, target db.BackfillTarget) (outcome, error) {
	match, err := r.resolver.ResolvePurchaseLink(ctx, target.Name, target.Company)
	if err != nil {
		// Undetermined: the search API failed, so the pill keeps its NULL
		// price and gets retried on the next run.
		log.Printf("[backfill] pill %d (%s): search failed, skipping: %v", target.ID, target.Name, err)
		return outcomeSkipped, nil
	}

	if match == nil {
		if err := r.store.MarkPurchaseNotFound(ctx, target.ID); err != nil {
			return 0, fmt.Errorf("pill %d: %w", target.ID, err)
		}
		return outcomeNotFound, nil
	}

	if err := r.store.SavePurchaseMatch(ctx, target.ID, *match); err != nil {
		return 0, fmt.Errorf("pill %d: %w", target.ID, err)
	}
	return outcomeMatched, nil
}
