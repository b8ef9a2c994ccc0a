package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/temoto/robotstxt"
)

// ErrDisallowed is returned for URLs that robots.txt closes to our agent
var ErrDisallowed = errors.New("disallowed by robots.txt")

// RobotsChecker checks robots.txt compliance
type RobotsChecker struct {
	httpClient *http.Client
	userAgent  string
}

// NewRobotsChecker creates a new robots.txt checker using client for the
// robots.txt request
func NewRobotsChecker(userAgent string, client *http.Client) *RobotsChecker {
	return &RobotsChecker{
		httpClient: client,
		userAgent:  userAgent,
	}
}

// CanFetch checks if the URL can be fetched according to robots.txt.
// Returns (allowed, crawlDelay, error). A robots.txt that cannot be fetched
// or parsed allows everything.
func (r *RobotsChecker) CanFetch(ctx context.Context, rawURL string) (bool, time.Duration, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, 0, fmt.Errorf("parse URL: %w", err)
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)

	data, err := r.getRobotsData(ctx, robotsURL)
	if err != nil {
		log.Warn().Err(err).Str("url", robotsURL).Msg("ignoring robots.txt")
		return true, 0, nil
	}

	agent := NormalizeUserAgent(r.userAgent)
	allowed := data.TestAgent(parsed.EscapedPath(), agent)

	crawlDelay := time.Duration(0)
	if group := data.FindGroup(agent); group != nil {
		crawlDelay = group.CrawlDelay
	}

	return allowed, crawlDelay, nil
}

// Check is CanFetch turned into an error for disallowed URLs
func (r *RobotsChecker) Check(ctx context.Context, rawURL string) (time.Duration, error) {
	allowed, crawlDelay, err := r.CanFetch(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	if !allowed {
		return 0, fmt.Errorf("%s: %w", rawURL, ErrDisallowed)
	}
	return crawlDelay, nil
}

func (r *RobotsChecker) getRobotsData(ctx context.Context, robotsURL string) (*robotstxt.RobotsData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	return data, nil
}

// NormalizeUserAgent returns the product token robots.txt groups match on
func NormalizeUserAgent(ua string) string {
	parts := strings.Fields(ua)
	if len(parts) > 0 {
		return strings.Split(parts[0], "/")[0]
	}
	return ua
}
