package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-ats/internal/types"
)

// Page size bounds for ListAnalyses.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ClampLimit maps a requested page size into [1, MaxListLimit], using
// DefaultListLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}

// SaveAnalysis stores a scoring result under a new ID and returns the record.
func (db *DB) SaveAnalysis(ctx context.Context, name string, res types.ATSResult) (*types.Analysis, error) {
	payload, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	a := &types.Analysis{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(name),
		TotalScore: res.TotalScore,
		Rating:     res.Rating,
		Result:     res,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO ats_analyses (id, name, total_score, rating, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		a.ID, a.Name, a.TotalScore, a.Rating, payload,
	).Scan(&a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return a, nil
}

// GetAnalysis retrieves one analysis by ID, or ErrNotFound.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error) {
	var a types.Analysis
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, total_score, rating, result, created_at
		 FROM ats_analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.TotalScore, &a.Rating, &payload, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}
	if err := json.Unmarshal(payload, &a.Result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis %s: %w", id, err)
	}
	return &a, nil
}

// ListAnalyses returns the most recent analyses, newest first, without their
// full result payloads.
func (db *DB) ListAnalyses(ctx context.Context, limit, offset int) ([]types.Analysis, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, total_score, rating, created_at
		 FROM ats_analyses
		 ORDER BY created_at DESC, id
		 LIMIT $1 OFFSET $2`,
		ClampLimit(limit), max(offset, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	out := []types.Analysis{}
	for rows.Next() {
		var a types.Analysis
		if err := rows.Scan(&a.ID, &a.Name, &a.TotalScore, &a.Rating, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return out, nil
}
