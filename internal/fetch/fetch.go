// Package fetch provides the timeout-bounded HTTP client shared by the
// discovery strategies and the sitemap index.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client performs plain GET requests with a fixed timeout and User-Agent.
// There are no retries; a slow source costs at most one timeout.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client with the given per-request timeout and
// User-Agent header value.
func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Get fetches url and returns the response body as a string. Statuses
// outside the 2xx range are errors carrying the status code.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("fetch new request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return "", fmt.Errorf("fetch %s: %w", url, doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("fetch %s: %w: %d", url, ErrUnexpectedStatus, resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return "", fmt.Errorf("fetch read body: %w", readErr)
	}

	return string(body), nil
}

// Document fetches url and parses the body as HTML.
func (c *Client) Document(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, parseErr := goquery.NewDocumentFromReader(strings.NewReader(body))
	if parseErr != nil {
		return nil, fmt.Errorf("fetch parse html: %w", parseErr)
	}

	return doc, nil
}
