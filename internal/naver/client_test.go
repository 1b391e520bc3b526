package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		BaseURL:      serverURL,
	})
}

func TestSearch_ReturnsTopResult(t *testing.T) {
	var gotReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"title": "코스맥스 메가비타민 120정",
					"link": "https://shopping.example/item/1",
					"image": "https://shopping.example/item/1.jpg",
					"lprice": "15900",
					"mallName": "필몰",
					"brand": "코스맥스",
					"maker": "코스맥스"
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	candidate, err := client.Search(context.Background(), "코스맥스 메가비타민")
	require.NoError(t, err)
	require.NotNil(t, candidate)

	assert.Equal(t, "코스맥스 메가비타민 120정", candidate.Title)
	assert.Equal(t, "15900", candidate.LowPrice)
	assert.Equal(t, "필몰", candidate.MallName)
	assert.Equal(t, "코스맥스", candidate.Maker)

	require.NotNil(t, gotReq)
	assert.Equal(t, "test-id", gotReq.Header.Get("X-Naver-Client-Id"))
	assert.Equal(t, "test-secret", gotReq.Header.Get("X-Naver-Client-Secret"))
	query := gotReq.URL.Query()
	assert.Equal(t, "코스맥스 메가비타민", query.Get("query"))
	assert.Equal(t, "1", query.Get("display"))
	assert.Equal(t, "sim", query.Get("sort"))
}

func TestSearch_NoItemsMeansNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	candidate, err := client.Search(context.Background(), "없는 제품")
	require.NoError(t, err)
	assert.Nil(t, candidate)
}

func TestSearch_Non200IsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	candidate, err := client.Search(context.Background(), "메가비타민")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, candidate)
}

func TestSearch_TransportErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), "메가비타민")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearch_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": `))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), "메가비타민")
	require.Error(t, err)
}
