package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BatchScoreRequest is the body of POST /v1/ats/score/batch.
type BatchScoreRequest struct {
	Resumes []map[string]any `json:"resumes" validate:"required,min=1,dive,required"`
}

// BatchScoreResponse carries one result per submitted résumé, in order.
type BatchScoreResponse struct {
	Results []ATSResult `json:"results"`
}

// JobMatchRequest is the body of POST /v1/ats/job-match when the job
// description is sent separately from the résumé.
type JobMatchRequest struct {
	Resume         map[string]any `json:"resume" validate:"required"`
	JobDescription string         `json:"job_description" validate:"required"`
}

// ScoreResponse wraps a result with its stored analysis ID when saved.
type ScoreResponse struct {
	AnalysisID *uuid.UUID `json:"analysis_id,omitempty"`
	ATSResult
}

// Analysis is a persisted scoring result.
type Analysis struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name,omitempty"`
	TotalScore int       `json:"total_score"`
	Rating     string    `json:"rating"`
	Result     ATSResult `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate validates the BatchScoreRequest using the validator.
func (r *BatchScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the JobMatchRequest using the validator.
func (r *JobMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
