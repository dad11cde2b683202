package rubric

// EffectKind is the closed set of adjustments a rule may apply.
type EffectKind string

const (
	EffectCap      EffectKind = "cap"
	EffectBoost    EffectKind = "boost"
	EffectReduce   EffectKind = "reduce"
	EffectMultiply EffectKind = "multiply"
)

// Effect adjusts one dimension's working score. Value is the cap for
// EffectCap, the delta for EffectBoost/EffectReduce, and the factor for
// EffectMultiply.
type Effect struct {
	Kind      EffectKind `json:"kind"`
	Dimension string     `json:"dimension"`
	Value     float64    `json:"value"`
}

func Cap(dimension string, max float64) Effect {
	return Effect{Kind: EffectCap, Dimension: dimension, Value: max}
}

func Boost(dimension string, delta float64) Effect {
	return Effect{Kind: EffectBoost, Dimension: dimension, Value: delta}
}

func Reduce(dimension string, delta float64) Effect {
	return Effect{Kind: EffectReduce, Dimension: dimension, Value: delta}
}

func Multiply(dimension string, factor float64) Effect {
	return Effect{Kind: EffectMultiply, Dimension: dimension, Value: factor}
}

// Condition inspects the current (possibly already adjusted) dimension-score
// map. Implementations must not mutate the map; the scorer hands each rule a
// private copy regardless.
type Condition func(scores map[string]float64) bool

// Rule is one conditional adjustment. Rules run exactly once per scoring
// call, in ascending Priority (declaration order breaks ties), and each
// rule sees the adjustments made by the rules before it.
type Rule struct {
	ID        string
	Priority  int
	Condition Condition
	Effect    Effect
}
