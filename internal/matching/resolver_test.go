package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearcher replays canned results per call and records the queries.
type fakeSearcher struct {
	results []*Candidate
	errs    []error
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, query string) (*Candidate, error) {
	f.queries = append(f.queries, query)
	idx := len(f.queries) - 1
	var err error
	if idx < len(f.errs) {
		err = f.errs[idx]
	}
	var result *Candidate
	if idx < len(f.results) {
		result = f.results[idx]
	}
	return result, err
}

func TestResolvePurchaseLink_FirstAttemptMatches(t *testing.T) {
	searcher := &fakeSearcher{
		results: []*Candidate{{
			Title:    "코스맥스 메가비타민 1000mg 120정",
			Maker:    "코스맥스",
			Link:     "https://shopping.example/item/1",
			LowPrice: "15900",
			MallName: "필몰",
			Image:    "https://shopping.example/item/1.jpg",
		}},
	}
	resolver := NewResolver(searcher)

	match, err := resolver.ResolvePurchaseLink(context.Background(), "메가비타민", "코스맥스")
	require.NoError(t, err)
	require.NotNil(t, match)

	assert.Equal(t, "https://shopping.example/item/1", match.Link)
	assert.Equal(t, 15900, match.Price)
	assert.Equal(t, "필몰", match.Mall)
	assert.Equal(t, "https://shopping.example/item/1.jpg", match.Image)
	assert.Equal(t, 120, match.Amount)
	assert.Equal(t, UnitCount, match.UnitType)

	require.Len(t, searcher.queries, 1)
	assert.Equal(t, "코스맥스 메가비타민", searcher.queries[0])
}

func TestResolvePurchaseLink_FallsBackToNameOnlyQuery(t *testing.T) {
	searcher := &fakeSearcher{
		results: []*Candidate{
			nil, // first query: no result
			{
				Title:    "메가비타민 120정",
				Brand:    "코스맥스",
				Link:     "https://shopping.example/item/2",
				LowPrice: "9900",
				MallName: "필몰",
			},
		},
	}
	resolver := NewResolver(searcher)

	match, err := resolver.ResolvePurchaseLink(context.Background(), "메가비타민", "코스맥스")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "https://shopping.example/item/2", match.Link)

	require.Len(t, searcher.queries, 2)
	assert.Equal(t, "코스맥스 메가비타민", searcher.queries[0])
	assert.Equal(t, "메가비타민", searcher.queries[1])
}

func TestResolvePurchaseLink_QueriesAreNormalized(t *testing.T) {
	searcher := &fakeSearcher{}
	resolver := NewResolver(searcher)

	_, err := resolver.ResolvePurchaseLink(context.Background(), "(포도맛) 메가비타민", "주식회사 코스맥스")
	require.NoError(t, err)

	require.Len(t, searcher.queries, 2)
	assert.Equal(t, "코스맥스 메가비타민", searcher.queries[0])
	assert.Equal(t, "메가비타민", searcher.queries[1])
}

func TestResolvePurchaseLink_InvalidCandidateIsNotFound(t *testing.T) {
	wrong := &Candidate{Title: "전혀다른 제품", Maker: "남의회사", LowPrice: "100"}
	searcher := &fakeSearcher{results: []*Candidate{wrong, wrong}}
	resolver := NewResolver(searcher)

	match, err := resolver.ResolvePurchaseLink(context.Background(), "메가비타민", "코스맥스")
	require.NoError(t, err)
	assert.Nil(t, match, "unvalidated candidates must resolve to not-found, not an error")
	assert.Len(t, searcher.queries, 2)
}

func TestResolvePurchaseLink_TransportFailureIsSurfaced(t *testing.T) {
	transportErr := errors.New("connection reset")
	searcher := &fakeSearcher{errs: []error{transportErr, transportErr}}
	resolver := NewResolver(searcher)

	match, err := resolver.ResolvePurchaseLink(context.Background(), "메가비타민", "코스맥스")
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
	assert.Nil(t, match)
}

func TestResolvePurchaseLink_SecondAttemptRecoversFromTransportFailure(t *testing.T) {
	searcher := &fakeSearcher{
		errs: []error{errors.New("timeout"), nil},
		results: []*Candidate{
			nil,
			{Title: "코스맥스 메가비타민", LowPrice: "12000", Link: "https://shopping.example/item/3"},
		},
	}
	resolver := NewResolver(searcher)

	match, err := resolver.ResolvePurchaseLink(context.Background(), "메가비타민", "코스맥스")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, 12000, match.Price)
}
