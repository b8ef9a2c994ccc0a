package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arabdict/conjfixtures/internal/model"
	"github.com/arabdict/conjfixtures/internal/util"
)

func testHTTPConfig() model.HTTPConfig {
	cfg := model.DefaultConfig().HTTP
	cfg.Timeout = 5 * time.Second
	cfg.UserAgent = "test-agent"
	cfg.RespectRobots = false
	return cfg
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("Unexpected User-Agent: %s", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=UTF-8")
		_, _ = fmt.Fprint(w, "<html><body>OK</body></html>")
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig(), nil)
	result, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.HTML != "<html><body>OK</body></html>" {
		t.Errorf("Unexpected HTML: %s", result.HTML)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("Unexpected status: %d", result.StatusCode)
	}
	if !strings.HasPrefix(result.ContentType, "text/html") {
		t.Errorf("Unexpected content type: %s", result.ContentType)
	}
}

func TestFetch_NoRetry(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig(), nil)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for 503, got nil")
	}
	if got := err.Error(); got != "unexpected status: 503 503 Service Unavailable" {
		t.Errorf("Unexpected error: %s", got)
	}
	if attempts.Load() != 1 {
		t.Errorf("Expected 1 attempt, got %d", attempts.Load())
	}
}

func TestFetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig(), nil)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for 404, got nil")
	}
	if got := err.Error(); got != "unexpected status: 404 404 Not Found" {
		t.Errorf("Unexpected error: %s", got)
	}
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	fetcher := NewFetcher(testHTTPConfig(), nil)
	_, err := fetcher.Fetch(context.Background(), url)
	if err == nil || !strings.HasPrefix(err.Error(), "fetch: ") {
		t.Errorf("Expected fetch error, got %v", err)
	}
}

func TestFetch_BodyLimit(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		maxBytes int64
		wantErr  bool
	}{
		{"under the cap", 9, 10, false},
		{"exactly at the cap", 10, 10, false},
		{"one byte over", 11, 10, true},
		{"far over", 100, 10, true},
		{"no cap", 100, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, strings.Repeat("a", tt.size))
			}))
			defer server.Close()

			cfg := testHTTPConfig()
			cfg.MaxBodyBytes = tt.maxBytes
			result, err := NewFetcher(cfg, nil).Fetch(context.Background(), server.URL)

			if tt.wantErr {
				if !errors.Is(err, ErrBodyTooLarge) {
					t.Fatalf("Expected ErrBodyTooLarge, got %v", err)
				}
				if result != nil {
					t.Errorf("Expected no result for an oversized body")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(result.HTML) != tt.size {
				t.Errorf("Expected %d bytes, got %d", tt.size, len(result.HTML))
			}
		})
	}
}

func TestFetch_RobotsDisallowed(t *testing.T) {
	var pageHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: test-agent\nDisallow: /wiki/\n")
			return
		}
		pageHits.Add(1)
		_, _ = fmt.Fprint(w, "<html></html>")
	}))
	defer server.Close()

	cfg := testHTTPConfig()
	cfg.RespectRobots = true
	fetcher := NewFetcher(cfg, util.NewLimiter(0, 1))

	_, err := fetcher.Fetch(context.Background(), server.URL+"/wiki/x")
	if err == nil || !strings.Contains(err.Error(), "disallowed by robots.txt") {
		t.Errorf("Expected robots error, got %v", err)
	}
	if pageHits.Load() != 0 {
		t.Errorf("Expected page not to be requested, got %d hits", pageHits.Load())
	}
}

func TestFetch_RobotsAllowed(t *testing.T) {
	var robotsHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			robotsHits.Add(1)
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /w/\n")
			return
		}
		_, _ = fmt.Fprint(w, "<html>OK</html>")
	}))
	defer server.Close()

	cfg := testHTTPConfig()
	cfg.RespectRobots = true
	fetcher := NewFetcher(cfg, util.NewLimiter(1000, 1))

	result, err := fetcher.Fetch(context.Background(), server.URL+"/wiki/x")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.HTML != "<html>OK</html>" {
		t.Errorf("Unexpected HTML: %s", result.HTML)
	}
	if robotsHits.Load() != 1 {
		t.Errorf("Expected robots.txt to be read once, got %d", robotsHits.Load())
	}
}

func TestFetch_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "<html></html>")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewFetcher(testHTTPConfig(), util.NewLimiter(1, 1))
	if _, err := fetcher.Fetch(ctx, server.URL); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
