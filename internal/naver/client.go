// Package naver implements a minimal client for the Naver shopping search
// open API, used to find purchase links for catalog products.
package naver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/pillgood/backend/internal/matching"
)

// DefaultBaseURL is the production shopping search endpoint.
const DefaultBaseURL = "https://openapi.naver.com/v1/search/shop.json"

// ErrUnavailable marks transport failures and non-200 responses from the
// search API. Callers treat it as "could not determine", never as "product
// does not exist".
var ErrUnavailable = errors.New("naver: shopping search unavailable")

// Client calls the Naver shopping search API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	limiter      *rate.Limiter
}

// Config holds the credentials and endpoint for the search API.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string // defaults to DefaultBaseURL
}

// NewClient creates a shopping search client. Naver caps the open API at 10
// requests per second per application, so outbound calls go through a rate
// limiter sized just under that.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:      baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		limiter:      rate.NewLimiter(rate.Limit(9), 1),
	}
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Image    string `json:"image"`
	LowPrice string `json:"lprice"`
	MallName string `json:"mallName"`
	Brand    string `json:"brand"`
	Maker    string `json:"maker"`
}

// Search returns the single most relevant shopping result for the query,
// by the API's own "sim" relevance sort. A 200 response with no items
// returns (nil, nil). Transport failures and non-200 statuses return
// ErrUnavailable; each call is attempted exactly once.
func (c *Client) Search(ctx context.Context, query string) (*matching.Candidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	params := url.Values{}
	params.Add("query", query)
	params.Add("display", "1")
	params.Add("sort", "sim")
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("naver: failed to create request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("naver: failed to decode response: %w", err)
	}
	if len(parsed.Items) == 0 {
		return nil, nil
	}

	item := parsed.Items[0]
	return &matching.Candidate{
		Title:    item.Title,
		Brand:    item.Brand,
		Maker:    item.Maker,
		Link:     item.Link,
		LowPrice: item.LowPrice,
		MallName: item.MallName,
		Image:    item.Image,
	}, nil
}
