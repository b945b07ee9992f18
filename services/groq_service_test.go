package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGroq(apiURL string, timeout time.Duration) *GroqService {
	return &GroqService{
		apiURL:       apiURL,
		token:        "test-token",
		model:        "llama-3.3-70b-versatile",
		chatClient:   &http.Client{Timeout: timeout},
		reportClient: &http.Client{Timeout: timeout},
	}
}

func TestGroqChatSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Stay hydrated and keep moving!"}}]}`))
	}))
	defer srv.Close()

	g := testGroq(srv.URL, 5*time.Second)
	reply, err := g.Chat("any tips for today?")
	require.NoError(t, err)
	assert.Equal(t, "Stay hydrated and keep moving!", reply)
}

func TestGroqChatUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := testGroq(srv.URL, 5*time.Second)
	_, err := g.Chat("hello")
	assert.ErrorIs(t, err, ErrUpstreamStatus)
}

func TestGroqChatEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	g := testGroq(srv.URL, 5*time.Second)
	_, err := g.Chat("hello")
	assert.ErrorIs(t, err, ErrUpstreamDecode)
}

func TestGroqChatMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":`))
	}))
	defer srv.Close()

	g := testGroq(srv.URL, 5*time.Second)
	_, err := g.Chat("hello")
	assert.ErrorIs(t, err, ErrUpstreamDecode)
}

func TestGroqChatTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	g := testGroq(srv.URL, 20*time.Millisecond)
	_, err := g.Chat("hello")
	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}
