// Package server provides the HTTP REST API for ATS résumé scoring.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/ats"
	"github.com/jonathan/resume-ats/internal/cache"
	"github.com/jonathan/resume-ats/internal/config"
	"github.com/jonathan/resume-ats/internal/logging"
	"github.com/jonathan/resume-ats/internal/observability"
	"github.com/jonathan/resume-ats/internal/server/middleware"
	"github.com/jonathan/resume-ats/internal/server/ratelimit"
	"github.com/jonathan/resume-ats/internal/types"
)

// maxBodyBytes caps request bodies. Batch requests get maxBodyBytes per résumé.
const maxBodyBytes = 1 << 20

// AnalysisStore persists scoring results. *db.DB implements it.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, name string, res types.ATSResult) (*types.Analysis, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error)
	ListAnalyses(ctx context.Context, limit, offset int) ([]types.Analysis, error)
}

// Options wires the server's collaborators. Store, Cache and Metrics may be nil.
type Options struct {
	Config     *config.Config
	Calculator *ats.Calculator
	Store      AnalysisStore
	Cache      *cache.Results
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	cfg         *config.Config
	calc        *ats.Calculator
	store       AnalysisStore
	cache       *cache.Results
	metrics     *observability.Metrics
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	auth        func(http.Handler) http.Handler
}

// New creates a new server instance
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("server config is required")
	}
	if opts.Calculator == nil {
		return nil, errors.New("calculator is required")
	}

	cfg := opts.Config
	s := &Server{
		cfg:     cfg,
		calc:    opts.Calculator,
		store:   opts.Store,
		cache:   opts.Cache,
		metrics: opts.Metrics,
		logger:  logging.OrNop(opts.Logger),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.NewConfig(
		cfg.RateLimit.Enabled, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))

	jwtConfig, err := cfg.JWT()
	if err != nil {
		s.rateLimiter.Stop()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	if jwtConfig != nil {
		s.auth = middleware.AuthMiddleware(NewJWTService(jwtConfig).AsTokenValidator())
	}

	mux := http.NewServeMux()
	s.handle(mux, "GET /health", s.handleHealth)
	s.handle(mux, "POST /v1/ats/score", s.handleScore)
	s.handle(mux, "POST /v1/ats/score/batch", s.handleScoreBatch)
	s.handle(mux, "POST /v1/ats/grammar", s.handleGrammar)
	s.handle(mux, "POST /v1/ats/job-match", s.handleJobMatch)
	s.handle(mux, "GET /v1/analyses", s.handleListAnalyses)
	s.handle(mux, "GET /v1/analyses/{id}", s.handleGetAnalysis)
	if cfg.Metrics.Enabled && s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.rateLimiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Close releases background resources without serving.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

type routeKey struct{}

// requestInfo is filled in by handle so outer middleware can label the request.
type requestInfo struct {
	route string
}

// handle registers h under pattern. Routes under /v1/ require a bearer token
// when JWT auth is configured.
func (s *Server) handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	var next http.Handler = h
	if s.auth != nil && strings.Contains(pattern, " /v1/") {
		next = s.auth(next)
	}
	mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, ok := r.Context().Value(routeKey{}).(*requestInfo); ok {
			info.route = pattern
		}
		next.ServeHTTP(w, r)
	}))
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging assigns a request ID, logs each request and records HTTP metrics.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		info := &requestInfo{route: "unmatched"}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), routeKey{}, info)))

		elapsed := time.Since(start)
		s.metrics.ObserveHTTP(info.route, rec.status, elapsed)
		s.logger.Info("request completed",
			zap.String(logging.FieldRequestID, requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration(logging.FieldDuration, elapsed))
	})
}

// extractClientID extracts the client identifier from the request.
// Only RemoteAddr is trusted; X-Forwarded-For is ignored.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		seconds := max(1, int(info.RetryAfter.Round(time.Second).Seconds()))
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("client", s.extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail maps err to a status code and writes it. Server errors are logged and
// their detail is not sent to the client.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		s.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String(logging.FieldRequestID, w.Header().Get("X-Request-ID")),
			zap.Error(err))
		message = http.StatusText(status)
	}
	s.errorResponse(w, status, message)
}
