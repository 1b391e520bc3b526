package matching

import (
	"context"
	"fmt"
	"strconv"
)

// Searcher is the outbound shopping-search dependency. Search returns the
// single most relevant result for the query, (nil, nil) when the API had no
// results, and an error only for transport or non-200 failures.
type Searcher interface {
	Search(ctx context.Context, query string) (*Candidate, error)
}

// PurchaseMatch is an accepted purchase link with the metadata the catalog
// stores alongside it.
type PurchaseMatch struct {
	Link     string
	Price    int
	Mall     string
	Image    string
	Amount   int
	UnitType UnitType
}

// Resolver finds purchase links for stored products.
type Resolver struct {
	searcher Searcher
}

// NewResolver creates a Resolver backed by the given search client.
func NewResolver(searcher Searcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// ResolvePurchaseLink looks the product up on the shopping API and returns
// a validated purchase match.
//
// Two queries are attempted in order: "<manufacturer> <name>" (both
// normalized), then the normalized name alone. The second attempt is a
// deliberate fallback for products listed without their manufacturer, not a
// retry. Each candidate is validated against the original, non-normalized
// strings.
//
// Outcomes: (match, nil) on success; (nil, nil) when no candidate
// validated, a normal result the caller records with the price=-1
// sentinel; (nil, err) when a search attempt failed and the absence could
// not be confirmed, so the caller should leave the product untouched.
func (r *Resolver) ResolvePurchaseLink(ctx context.Context, productName, manufacturer string) (*PurchaseMatch, error) {
	cleanName := Normalize(productName)
	cleanCompany := Normalize(manufacturer)

	var lastErr error
	queries := []string{cleanCompany + " " + cleanName, cleanName}
	for _, query := range queries {
		candidate, err := r.searcher.Search(ctx, query)
		if err != nil {
			lastErr = err
			continue
		}
		if candidate != nil && IsValidMatch(manufacturer, productName, *candidate) {
			return buildMatch(*candidate), nil
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("purchase link for %q undetermined: %w", productName, lastErr)
	}
	return nil, nil
}

func buildMatch(c Candidate) *PurchaseMatch {
	// Naver reports lprice as a numeric string; an empty or malformed value
	// parses to 0 rather than failing the whole match.
	price, _ := strconv.Atoi(c.LowPrice)
	amount, unitType := ExtractAmount(c.Title)
	return &PurchaseMatch{
		Link:     c.Link,
		Price:    price,
		Mall:     c.MallName,
		Image:    c.Image,
		Amount:   amount,
		UnitType: unitType,
	}
}
