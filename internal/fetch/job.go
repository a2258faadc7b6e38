package fetch

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// JobFetcher downloads a job posting and returns its description text.
type JobFetcher struct {
	Options *Options
	// Browser, when set, re-renders pages whose HTTP response is too thin.
	Browser Renderer
	Logger  *zap.Logger
}

// NewJobFetcher returns a fetcher with default options. A nil browser disables rendering.
func NewJobFetcher(browser Renderer, logger *zap.Logger) *JobFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobFetcher{Options: DefaultOptions(), Browser: browser, Logger: logger}
}

// JobDescription fetches urlStr and extracts the posting text. Plain-text
// responses are returned as-is. When the extracted text looks too thin and a
// browser is configured, the page is rendered and extracted again.
func (f *JobFetcher) JobDescription(ctx context.Context, urlStr string) (*Result, error) {
	logger := f.Logger.With(zap.String("url", urlStr), zap.String("platform", string(DetectPlatform(urlStr))))

	res, err := URL(ctx, urlStr, f.Options)
	var fetchErr *Error
	switch {
	case err == nil:
	case f.Browser != nil && res != nil && errors.As(err, &fetchErr):
		// Some boards answer bots with 403 while serving browsers normally.
		logger.Debug("http fetch failed, trying browser", zap.Error(err))
		res = &Result{URL: urlStr}
	default:
		return nil, err
	}

	if res.HTML != "" {
		if strings.HasPrefix(res.ContentType, "text/plain") {
			res.Text = cleanWhitespace(res.HTML)
			return res, nil
		}
		res.Text, err = ExtractMainText(res.HTML, ContentSelectors(urlStr), NoiseSelectors(urlStr)...)
		if err != nil {
			return nil, &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
		}
	}

	if f.Browser == nil || !(ShouldUseBrowser(res.Text) || RendersClientSide(urlStr)) {
		logger.Debug("fetched job description", zap.Int("chars", len(res.Text)))
		return res, nil
	}

	html, err := f.Browser.Render(ctx, urlStr)
	if err != nil {
		if res.Text != "" {
			logger.Warn("browser rendering failed, keeping HTTP text", zap.Error(err))
			return res, nil
		}
		return nil, err
	}
	text, err := ExtractMainText(html, ContentSelectors(urlStr), NoiseSelectors(urlStr)...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to extract rendered text", Cause: err}
	}
	if len(text) > len(res.Text) {
		res.HTML, res.Text = html, text
	}
	logger.Debug("fetched job description with browser", zap.Int("chars", len(res.Text)))
	return res, nil
}
