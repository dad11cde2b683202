// Package claims cross-checks free-text assertions against a corpus of
// source texts, flagging claims the sources do not support.
package claims

import (
	"github.com/admitlens/admitlens/internal/textsim"
)

// DefaultThreshold is the confidence at or above which a claim counts as
// verified.
const DefaultThreshold = 0.6

// Validation is the outcome of checking one claim. BestMatchIndex is nil
// when there were no sources to match against.
type Validation struct {
	Verified       bool    `json:"verified"`
	BestMatchIndex *int    `json:"best_match_index"`
	Confidence     float64 `json:"confidence"`
}

// Validate checks a claim against each source text with the default
// threshold. An empty source list is not an error; it yields an unverified
// result with zero confidence.
func Validate(claim string, sources []string) Validation {
	return ValidateWithThreshold(claim, sources, DefaultThreshold)
}

// ValidateWithThreshold scores the claim's word coverage against every
// source (an exact normalized substring match counts as full confidence),
// keeps the best source, and verifies when that confidence reaches the
// threshold. threshold <= 0 selects DefaultThreshold.
func ValidateWithThreshold(claim string, sources []string, threshold float64) Validation {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if len(sources) == 0 {
		return Validation{Verified: false, BestMatchIndex: nil, Confidence: 0}
	}
	best := 0
	bestConf := textsim.Coverage(claim, sources[0])
	for i := 1; i < len(sources); i++ {
		if conf := textsim.Coverage(claim, sources[i]); conf > bestConf {
			best, bestConf = i, conf
		}
	}
	return Validation{
		Verified:       bestConf >= threshold,
		BestMatchIndex: &best,
		Confidence:     bestConf,
	}
}
