package rubric

import (
	"fmt"
	"sort"
)

// ScoreEntry is a per-dimension raw score produced by an external scorer
// (a model call or a feature detector). The engine only consumes it.
type ScoreEntry struct {
	DimensionID string   `json:"dimension_id"`
	RawScore    float64  `json:"raw_score"`
	Evidence    []string `json:"evidence,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// DimensionScore is the per-dimension slice of a composite result.
type DimensionScore struct {
	Raw          float64 `json:"raw"`
	Adjusted     float64 `json:"adjusted"`
	Contribution float64 `json:"contribution"`
}

// CompositeResult is the full, reconstructable outcome of one scoring call.
// The sum of Contribution values equals PreClampScore exactly; it equals
// FinalScore too unless the composite had to be clamped into [0,100].
type CompositeResult struct {
	RubricVersion string                    `json:"rubric_version"`
	FinalScore    float64                   `json:"final_score"`
	PreClampScore float64                   `json:"pre_clamp_score"`
	Clamped       bool                      `json:"clamped"`
	Dimensions    map[string]DimensionScore `json:"dimensions"`
	AppliedRules  []string                  `json:"applied_rules"`
	Warnings      []string                  `json:"warnings,omitempty"`
	Impression    string                    `json:"impression"`
}

// Score applies the rubric's interaction rules to the given per-dimension
// entries and computes the weighted 0-100 composite with its breakdown.
//
// Every dimension the rubric declares must be present in entries, and every
// entry must reference a declared dimension; either mismatch is a
// configuration error naming the offending dimension id. Raw scores outside
// a dimension's declared range are clamped and the clamp is recorded as a
// warning.
func Score(entries map[string]ScoreEntry, r Rubric) (CompositeResult, error) {
	if err := r.Validate(); err != nil {
		return CompositeResult{}, err
	}
	for id := range entries {
		if _, ok := r.Dimension(id); !ok {
			return CompositeResult{}, fmt.Errorf("rubric %s: input references unknown dimension %q", r.Version, id)
		}
	}

	res := CompositeResult{
		RubricVersion: r.Version,
		Dimensions:    make(map[string]DimensionScore, len(r.Dimensions)),
		AppliedRules:  []string{},
	}

	adjusted := make(map[string]float64, len(r.Dimensions))
	raw := make(map[string]float64, len(r.Dimensions))
	for _, d := range r.Dimensions {
		e, ok := entries[d.ID]
		if !ok {
			return CompositeResult{}, fmt.Errorf("rubric %s: missing score for dimension %q", r.Version, d.ID)
		}
		v := e.RawScore
		if clamped := clamp(v, d.MinScore, d.MaxScore); clamped != v {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("dimension %q raw score %.2f clamped to [%.2f, %.2f]",
					d.ID, v, d.MinScore, d.MaxScore))
			v = clamped
		}
		raw[d.ID] = e.RawScore
		adjusted[d.ID] = v
	}

	// Single ordered pass: each rule sees the adjustments of the rules
	// before it. Rules never re-trigger.
	rules := make([]Rule, len(r.Rules))
	copy(rules, r.Rules)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority < rules[j].Priority })
	for _, rule := range rules {
		if !rule.Condition(copyScores(adjusted)) {
			continue
		}
		d, _ := r.Dimension(rule.Effect.Dimension)
		cur := adjusted[d.ID]
		switch rule.Effect.Kind {
		case EffectCap:
			if cur > rule.Effect.Value {
				cur = rule.Effect.Value
			}
		case EffectBoost:
			cur = clamp(cur+rule.Effect.Value, d.MinScore, d.MaxScore)
		case EffectReduce:
			cur = clamp(cur-rule.Effect.Value, d.MinScore, d.MaxScore)
		case EffectMultiply:
			cur = clamp(cur*rule.Effect.Value, d.MinScore, d.MaxScore)
		default:
			return CompositeResult{}, fmt.Errorf("rubric %s: rule %q has unknown effect kind %q",
				r.Version, rule.ID, rule.Effect.Kind)
		}
		adjusted[d.ID] = cur
		res.AppliedRules = append(res.AppliedRules, rule.ID)
	}

	totalWeight := 0.0
	for _, d := range r.Dimensions {
		totalWeight += d.Weight
	}
	sum := 0.0
	for _, d := range r.Dimensions {
		contribution := adjusted[d.ID] * d.Weight / (totalWeight * r.Scale) * 100
		sum += contribution
		res.Dimensions[d.ID] = DimensionScore{
			Raw:          raw[d.ID],
			Adjusted:     adjusted[d.ID],
			Contribution: contribution,
		}
	}

	res.PreClampScore = sum
	res.FinalScore = clamp(sum, 0, 100)
	res.Clamped = res.FinalScore != sum
	res.Impression = r.Impression(res.FinalScore)
	return res, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func copyScores(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
