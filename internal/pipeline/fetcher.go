package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/arabdict/conjfixtures/internal/model"
	"github.com/arabdict/conjfixtures/internal/util"
	"github.com/rs/zerolog/log"
)

// ErrBodyTooLarge is returned when a page exceeds http.max_body_bytes
var ErrBodyTooLarge = errors.New("response body too large")

// Fetcher fetches HTML content from URLs
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker // nil when robots.txt is ignored
	limiter    *util.Limiter
}

// NewFetcher creates a new Fetcher with the given configuration
func NewFetcher(cfg model.HTTPConfig, limiter *util.Limiter) *Fetcher {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 3 {
				return fmt.Errorf("stopped after 3 redirects")
			}
			return nil
		},
	}

	f := &Fetcher{
		httpClient: client,
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxBodyBytes,
		limiter:    limiter,
	}
	if cfg.RespectRobots {
		f.robots = util.NewRobotsChecker(cfg.UserAgent, client)
	}
	return f
}

// FetchResult contains the fetched HTML and metadata
type FetchResult struct {
	HTML        string
	StatusCode  int
	ContentType string
	FinalURL    string
}

// Fetch retrieves HTML content from the given URL with a single GET
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	if err := f.beforeRequest(ctx, rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	var body []byte
	if f.maxBytes > 0 {
		// one byte past the cap tells a full page from a cut one
		body, err = io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	} else {
		body, err = io.ReadAll(resp.Body)
	}
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if f.maxBytes > 0 && int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes from %s", ErrBodyTooLarge, f.maxBytes, rawURL)
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Str("url", resp.Request.URL.String()).
		Msg("fetched page")

	return &FetchResult{
		HTML:        string(body),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
	}, nil
}

// beforeRequest applies robots.txt and the host's rate limit
func (f *Fetcher) beforeRequest(ctx context.Context, rawURL string) error {
	if f.robots != nil {
		// the robots.txt request counts against the host like any other
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx, rawURL); err != nil {
				return fmt.Errorf("rate limit: %w", err)
			}
		}

		crawlDelay, err := f.robots.Check(ctx, rawURL)
		if err != nil {
			return fmt.Errorf("robots: %w", err)
		}
		if crawlDelay > 0 && f.limiter != nil {
			if parsed, err := url.Parse(rawURL); err == nil {
				log.Debug().Dur("crawl_delay", crawlDelay).Str("host", parsed.Host).Msg("honouring crawl delay")
				f.limiter.SlowDown(parsed.Host, crawlDelay)
			}
		}
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}
	return nil
}
