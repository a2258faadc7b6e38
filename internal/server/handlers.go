package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ats/internal/grammar"
	"github.com/jonathan/resume-ats/internal/logging"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/types"
)

// decodeJSON reads one JSON value from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return err
		case errors.Is(err, io.EOF):
			return &ErrValidation{Field: "body", Message: "request body is empty"}
		}
		return &ErrValidation{Field: "body", Message: "malformed JSON: " + err.Error()}
	}
	if dec.More() {
		return &ErrValidation{Field: "body", Message: "unexpected data after JSON value"}
	}
	return nil
}

// validationError converts validator failures into an ErrValidation naming the first field.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{Field: fe.Namespace(), Message: fmt.Sprintf("failed %q", fe.Tag())}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}

// score computes (or fetches from cache) the result for one raw résumé.
func (s *Server) score(ctx context.Context, raw map[string]any) types.ATSResult {
	res, _ := s.cache.GetOrCompute(ctx, raw, func() types.ATSResult {
		start := time.Now()
		res := s.calc.Calculate(raw)
		s.metrics.ObserveScore(res, time.Since(start))
		return res
	})
	return res
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	database := "disabled"
	if s.store != nil {
		database = "enabled"
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"cache":    s.cache.State(),
		"database": database,
	})
}

// handleScore scores one raw résumé. With ?save=true the result is persisted
// and its analysis ID returned.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := decodeJSON(w, r, maxBodyBytes, &raw); err != nil {
		s.fail(w, r, err)
		return
	}

	save := false
	if v := r.URL.Query().Get("save"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			s.fail(w, r, &ErrValidation{Field: "save", Message: "must be a boolean"})
			return
		}
		save = parsed
	}
	if save && s.store == nil {
		s.fail(w, r, ErrStoreUnavailable)
		return
	}

	res := s.score(r.Context(), raw)
	resp := types.ScoreResponse{ATSResult: res}

	if save {
		name := parsing.NormalizeResume(raw).Name
		analysis, err := s.store.SaveAnalysis(r.Context(), name, res)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		resp.AnalysisID = &analysis.ID
		s.logger.Info("analysis saved",
			zap.String(logging.FieldAnalysisID, analysis.ID.String()),
			zap.Int(logging.FieldTotalScore, res.TotalScore))
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScoreBatch scores up to batch.max_size résumés in parallel, keeping input order.
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Batch.MaxSize
	var req types.BatchScoreRequest
	if err := decodeJSON(w, r, int64(maxSize)*maxBodyBytes, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, r, validationError(err))
		return
	}
	if len(req.Resumes) > maxSize {
		s.fail(w, r, &ErrValidation{Field: "resumes", Message: fmt.Sprintf("at most %d résumés per batch", maxSize)})
		return
	}

	results := make([]types.ATSResult, len(req.Resumes))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(s.cfg.Batch.Workers)
	for i, raw := range req.Resumes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.score(ctx, raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Only a cancelled request gets here; the client is gone.
		s.logger.Debug("batch scoring cancelled", zap.Error(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, types.BatchScoreResponse{Results: results})
}

// handleGrammar runs the grammar checker over the résumé's text sections.
func (s *Server) handleGrammar(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := decodeJSON(w, r, maxBodyBytes, &raw); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, grammar.CheckResume(parsing.NormalizeResume(raw)))
}

// handleJobMatch compares a résumé with a job description. The body is either
// the résumé itself carrying job_description, or {"resume": {...}, "job_description": "..."}.
func (s *Server) handleJobMatch(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := decodeJSON(w, r, maxBodyBytes, &raw); err != nil {
		s.fail(w, r, err)
		return
	}

	resume := raw
	if nested, ok := raw["resume"].(map[string]any); ok {
		req := types.JobMatchRequest{Resume: nested}
		req.JobDescription, _ = raw["job_description"].(string)
		if err := req.Validate(); err != nil {
			s.fail(w, r, validationError(err))
			return
		}
		resume = map[string]any{}
		for k, v := range nested {
			resume[k] = v
		}
		resume["job_description"] = req.JobDescription
	}

	match := s.calc.Matcher().Analyze(parsing.NormalizeResume(resume))
	if match == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{"job_match": nil})
		return
	}
	s.jsonResponse(w, http.StatusOK, match)
}

// handleGetAnalysis returns one stored analysis.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, ErrStoreUnavailable)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.fail(w, r, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}
	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleListAnalyses returns a page of stored analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, ErrStoreUnavailable)
		return
	}

	limit, offset := 0, 0
	params := []struct {
		name string
		dst  *int
	}{{"limit", &limit}, {"offset", &offset}}
	for _, p := range params {
		v := r.URL.Query().Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.fail(w, r, &ErrValidation{Field: p.name, Message: "must be a non-negative integer"})
			return
		}
		*p.dst = n
	}

	analyses, err := s.store.ListAnalyses(r.Context(), limit, offset)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": analyses})
}
