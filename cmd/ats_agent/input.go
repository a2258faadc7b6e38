package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/fetch"
	"github.com/jonathan/resume-ats/internal/logging"
	"github.com/jonathan/resume-ats/internal/schemas"
)

// jobFlags selects where a job description comes from.
type jobFlags struct {
	file       string
	url        string
	useBrowser bool
}

// readResume loads a raw résumé object from a JSON file. Schema mismatches are
// logged as warnings since the scorer tolerates loosely shaped input.
func readResume(path string, logger *zap.Logger) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse resume %s: %w", path, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	if err := schemas.ValidateResume(data); err != nil {
		var validationErr *schemas.ValidationError
		if !errors.As(err, &validationErr) {
			return nil, err
		}
		for _, fe := range validationErr.Errors {
			logger.Warn("resume does not match schema",
				zap.String(logging.FieldSource, path),
				zap.String("field", fe.Field),
				zap.String("problem", fe.Message))
		}
	}
	return raw, nil
}

// load returns the job description text, or "" when no source is set.
func (j jobFlags) load(ctx context.Context, logger *zap.Logger) (string, error) {
	switch {
	case j.file != "":
		data, err := os.ReadFile(j.file)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	case j.url != "":
		if err := fetch.ValidateURL(j.url); err != nil {
			return "", err
		}
		var browser fetch.Renderer
		if j.useBrowser {
			browser = fetch.NewChromeRenderer(logger)
		}
		res, err := fetch.NewJobFetcher(browser, logger).JobDescription(ctx, j.url)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		logger.Info("fetched job description",
			zap.String(logging.FieldSource, j.url),
			zap.Int("chars", len(res.Text)))
		return res.Text, nil
	}
	return "", nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if strings.TrimSpace(path) == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
