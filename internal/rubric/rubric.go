package rubric

import (
	"errors"
	"fmt"
	"sort"
)

// Anchor pins an example description to a point on a dimension's scale.
type Anchor struct {
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Dimension is one weighted axis of evaluation.
type Dimension struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Weight      float64  `json:"weight"`
	MinScore    float64  `json:"min_score"`
	MaxScore    float64  `json:"max_score"`
	Anchors     []Anchor `json:"anchors,omitempty"`
}

// Band labels a half-open range of the 0-100 composite. Bands are ordered by
// ascending Min; the highest band whose Min the score reaches wins.
type Band struct {
	Min   float64 `json:"min"`
	Label string  `json:"label"`
}

// Rubric is a versioned, immutable scoring configuration. Versions are never
// mutated in place; a revision is a new Rubric under a new Version.
type Rubric struct {
	Version    string      `json:"version"`
	Scale      float64     `json:"scale"` // per-dimension score that maps to a 100 composite
	Dimensions []Dimension `json:"dimensions"`
	Rules      []Rule      `json:"-"`
	Bands      []Band      `json:"bands"`
}

// Dimension looks up a dimension definition by id.
func (r Rubric) Dimension(id string) (Dimension, bool) {
	for _, d := range r.Dimensions {
		if d.ID == id {
			return d, true
		}
	}
	return Dimension{}, false
}

// Impression maps a composite score onto the rubric's band labels.
func (r Rubric) Impression(score float64) string {
	label := ""
	for _, b := range r.Bands {
		if score >= b.Min {
			label = b.Label
		}
	}
	return label
}

// Validate runs consistency checks over the definition. A rubric that fails
// Validate must not be registered or scored against.
func (r Rubric) Validate() error {
	if r.Version == "" {
		return errors.New("rubric version is required")
	}
	if r.Scale <= 0 {
		return fmt.Errorf("rubric %s: scale must be positive", r.Version)
	}
	if len(r.Dimensions) == 0 {
		return fmt.Errorf("rubric %s: at least one dimension is required", r.Version)
	}
	seen := map[string]bool{}
	for _, d := range r.Dimensions {
		if d.ID == "" {
			return fmt.Errorf("rubric %s: dimension id is required", r.Version)
		}
		if seen[d.ID] {
			return fmt.Errorf("rubric %s: duplicate dimension id %q", r.Version, d.ID)
		}
		seen[d.ID] = true
		if d.Weight <= 0 {
			return fmt.Errorf("rubric %s: dimension %q weight must be positive", r.Version, d.ID)
		}
		if d.MaxScore <= d.MinScore {
			return fmt.Errorf("rubric %s: dimension %q has empty score range", r.Version, d.ID)
		}
	}
	for _, rule := range r.Rules {
		if rule.ID == "" {
			return fmt.Errorf("rubric %s: rule id is required", r.Version)
		}
		if rule.Condition == nil {
			return fmt.Errorf("rubric %s: rule %q has no condition", r.Version, rule.ID)
		}
		if !seen[rule.Effect.Dimension] {
			return fmt.Errorf("rubric %s: rule %q targets unknown dimension %q",
				r.Version, rule.ID, rule.Effect.Dimension)
		}
	}
	for i := 1; i < len(r.Bands); i++ {
		if r.Bands[i].Min <= r.Bands[i-1].Min {
			return fmt.Errorf("rubric %s: bands must be strictly ascending", r.Version)
		}
	}
	return nil
}

// ---- version registry ----

var registry = map[string]Rubric{}

// Register binds a rubric under its version key. Registering an invalid
// rubric is a programming error.
func Register(r Rubric) {
	if err := r.Validate(); err != nil {
		panic(err)
	}
	registry[r.Version] = r
}

// Get returns the rubric registered under version.
func Get(version string) (Rubric, bool) {
	r, ok := registry[version]
	return r, ok
}

// Versions lists registered rubric versions, sorted.
func Versions() []string {
	out := make([]string, 0, len(registry))
	for v := range registry {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
