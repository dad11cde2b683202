package analysis

import (
	"github.com/admitlens/admitlens/internal/claims"
	"github.com/admitlens/admitlens/internal/rubric"
	"github.com/admitlens/admitlens/internal/textsim"
)

// Essay is a stored submission: a personal essay or an extracurricular
// narrative, depending on Kind.
type Essay struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"` // "essay" or "activity"
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
}

// RepetitionFlag records similarity between a submission and one of the
// author's prior submissions.
type RepetitionFlag struct {
	EssayID  string           `json:"essay_id"` // the prior essay compared against
	Score    float64          `json:"score"`
	Severity textsim.Severity `json:"severity"`
	Overlaps []string         `json:"overlaps,omitempty"`
}

// ClaimCheck pairs an asserted claim with its validation outcome.
type ClaimCheck struct {
	Claim string `json:"claim"`
	claims.Validation
}

// Record is one completed analysis of an essay: the rubric composite plus
// repetition and claim findings. Records are immutable once stored.
type Record struct {
	ID            string                 `json:"id"`
	EssayID       string                 `json:"essay_id"`
	UserID        string                 `json:"user_id"`
	RubricVersion string                 `json:"rubric_version"`
	Composite     rubric.CompositeResult `json:"composite"`
	Repetition    []RepetitionFlag       `json:"repetition,omitempty"`
	Claims        []ClaimCheck           `json:"claims,omitempty"`
	CreatedAt     int64                  `json:"created_at"`
}
