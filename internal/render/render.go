// Package render provides headless-browser page rendering for sources whose
// listings only exist after client-side JavaScript runs.
package render

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/jonesrussell/blogwatch/internal/config"
	"github.com/jonesrussell/blogwatch/internal/logger"
)

// settleDelay gives client-side rendering time to finish after the wait
// selector appears.
const settleDelay = 2 * time.Second

// chromeBinaries are probed in order to decide whether rendering is possible
// on this host.
var chromeBinaries = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
}

// Renderer renders a page to HTML after its content has loaded.
type Renderer interface {
	// Render navigates to pageURL, waits for waitSelector, and returns the
	// rendered document HTML.
	Render(ctx context.Context, pageURL, waitSelector string) (string, error)
	// Available reports whether rendering can work at all on this host.
	Available() bool
}

// ChromeRenderer drives a headless Chrome or Chromium via chromedp. Each
// Render call owns its full browser lifecycle; nothing survives the call.
type ChromeRenderer struct {
	enabled   bool
	timeout   time.Duration
	userAgent string
	log       logger.Interface
}

// NewChromeRenderer creates a renderer from browser configuration.
func NewChromeRenderer(cfg *config.BrowserConfig, log logger.Interface) *ChromeRenderer {
	return &ChromeRenderer{
		enabled:   cfg.Enabled,
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
		log:       log,
	}
}

// Available reports whether rendering is enabled and a browser binary can
// be found on PATH.
func (r *ChromeRenderer) Available() bool {
	if !r.enabled {
		return false
	}

	for _, name := range chromeBinaries {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}

	return false
}

// Render navigates to pageURL in a fresh headless browser, waits for
// waitSelector plus a short settle delay, and returns the document HTML.
// The allocator, browser context, and timeout context are all released
// before Render returns, on every path.
func (r *ChromeRenderer) Render(ctx context.Context, pageURL, waitSelector string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(r.userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.timeout)
	defer cancelRun()

	r.log.Debug("Rendering page", "url", pageURL, "wait_for", waitSelector)

	var html string

	err := chromedp.Run(runCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(waitSelector, chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", pageURL, err)
	}

	return html, nil
}
