package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// MinContentLength is the minimum extracted text length to consider an HTTP
// fetch successful. Shorter text suggests a JavaScript-rendered page.
const MinContentLength = 500

// ShouldUseBrowser reports whether extracted text is too short to be a real posting.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// Renderer returns the rendered HTML of a page.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// ChromeRenderer renders pages in headless Chrome. Chrome or Chromium must be installed.
type ChromeRenderer struct {
	Timeout time.Duration
	// Settle is how long to wait after the body is ready for scripts to fill it in.
	Settle time.Duration
	Logger *zap.Logger
}

// NewChromeRenderer returns a renderer with the default timeout.
func NewChromeRenderer(logger *zap.Logger) *ChromeRenderer {
	return &ChromeRenderer{Timeout: DefaultTimeout, Settle: 3 * time.Second, Logger: logger}
}

// Render navigates to url and returns the page's outer HTML.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("starting headless browser", zap.String("url", url))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(r.Settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: url, Message: "browser rendering failed", Cause: err}
	}

	logger.Debug("rendered page", zap.String("url", url), zap.Int("bytes", len(html)))
	if html == "" {
		return "", &Error{URL: url, Message: fmt.Sprintf("browser returned no HTML after %s", r.Timeout)}
	}
	return html, nil
}
