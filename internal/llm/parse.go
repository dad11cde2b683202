package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/admitlens/admitlens/internal/rubric"
)

type scorePayload struct {
	Scores []rubric.ScoreEntry `json:"scores"`
}

// ParseScoreEntries decodes a model response into typed per-dimension
// entries validated against the rubric. Anything malformed is rejected here
// so the scorer only ever sees well-formed input.
func ParseScoreEntries(raw []byte, r rubric.Rubric) (map[string]rubric.ScoreEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var p scorePayload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("model payload: %w", err)
	}
	return ValidateEntries(p.Scores, r)
}

// ValidateEntries checks a list of dimension entries against the rubric:
// every dimension id must be declared, appear exactly once, carry a finite
// score, and every rubric dimension must be present. Shared by the model
// parser and the HTTP handlers so no path can smuggle duplicate or unknown
// dimensions past the scorer.
func ValidateEntries(entries []rubric.ScoreEntry, r rubric.Rubric) (map[string]rubric.ScoreEntry, error) {
	out := make(map[string]rubric.ScoreEntry, len(entries))
	for _, e := range entries {
		if e.DimensionID == "" {
			return nil, fmt.Errorf("entry missing dimension_id")
		}
		if _, ok := r.Dimension(e.DimensionID); !ok {
			return nil, fmt.Errorf("unknown dimension %q", e.DimensionID)
		}
		if _, dup := out[e.DimensionID]; dup {
			return nil, fmt.Errorf("duplicate dimension %q", e.DimensionID)
		}
		if math.IsNaN(e.RawScore) || math.IsInf(e.RawScore, 0) {
			return nil, fmt.Errorf("dimension %q has non-finite score", e.DimensionID)
		}
		out[e.DimensionID] = e
	}
	for _, d := range r.Dimensions {
		if _, ok := out[d.ID]; !ok {
			return nil, fmt.Errorf("missing dimension %q", d.ID)
		}
	}
	return out, nil
}
