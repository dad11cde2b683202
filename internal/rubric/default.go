package rubric

// Built-in rubric versions. Callers select by version string; unknown
// versions fall back to DefaultVersion at the service layer.
const (
	DefaultVersion  = "essay.v1"
	ActivityVersion = "activity.v1"
)

func init() {
	Register(EssayV1())
	Register(ActivityV1())
}

// EssayV1 scores personal essays on five 0-10 dimensions. The interaction
// rules run in priority order: authenticity gates impact before the later
// rules read the adjusted impact value.
func EssayV1() Rubric {
	return Rubric{
		Version: DefaultVersion,
		Scale:   10,
		Dimensions: []Dimension{
			{
				ID: "specificity", DisplayName: "Specificity", Weight: 0.25,
				MinScore: 0, MaxScore: 10,
				Anchors: []Anchor{
					{Score: 2, Description: "Generic statements that could appear in anyone's essay"},
					{Score: 6, Description: "Concrete scenes and named details, unevenly sustained"},
					{Score: 9, Description: "Vivid, particular detail throughout; nothing interchangeable"},
				},
			},
			{
				ID: "authenticity", DisplayName: "Authenticity", Weight: 0.25,
				MinScore: 0, MaxScore: 10,
				Anchors: []Anchor{
					{Score: 2, Description: "Reads as performed or borrowed; voice does not match the story"},
					{Score: 6, Description: "Mostly genuine with occasional posturing"},
					{Score: 9, Description: "Unmistakably the writer's own experience and reflection"},
				},
			},
			{
				ID: "impact", DisplayName: "Impact", Weight: 0.20,
				MinScore: 0, MaxScore: 10,
				Anchors: []Anchor{
					{Score: 2, Description: "Claims of change with no visible outcome"},
					{Score: 6, Description: "Clear outcomes, loosely tied to the writer's actions"},
					{Score: 9, Description: "Specific, attributable outcomes with honest scope"},
				},
			},
			{
				ID: "coherence", DisplayName: "Coherence", Weight: 0.15,
				MinScore: 0, MaxScore: 10,
				Anchors: []Anchor{
					{Score: 2, Description: "Fragments without a through-line"},
					{Score: 6, Description: "Followable arc with abrupt transitions"},
					{Score: 9, Description: "Every paragraph earns its place in one arc"},
				},
			},
			{
				ID: "voice", DisplayName: "Voice", Weight: 0.15,
				MinScore: 0, MaxScore: 10,
				Anchors: []Anchor{
					{Score: 2, Description: "Thesaurus prose; no person behind the words"},
					{Score: 6, Description: "Recognizable personality in places"},
					{Score: 9, Description: "Distinct voice a reader would know again"},
				},
			},
		},
		Rules: []Rule{
			{
				ID:       "low-authenticity-caps-impact",
				Priority: 10,
				Condition: func(s map[string]float64) bool {
					return s["authenticity"] < 4
				},
				Effect: Cap("impact", 6),
			},
			{
				ID:       "vague-writing-reduces-impact",
				Priority: 20,
				Condition: func(s map[string]float64) bool {
					return s["specificity"] < 3
				},
				Effect: Reduce("impact", 1),
			},
			{
				ID:       "cohesive-story-boosts-voice",
				Priority: 30,
				Condition: func(s map[string]float64) bool {
					return s["coherence"] >= 8 && s["specificity"] >= 7
				},
				Effect: Boost("voice", 0.5),
			},
			{
				// Reads impact after the earlier rules may have lowered it.
				ID:       "weak-evidence-discounts-voice",
				Priority: 40,
				Condition: func(s map[string]float64) bool {
					return s["impact"] < 4
				},
				Effect: Multiply("voice", 0.85),
			},
		},
		Bands: []Band{
			{Min: 0, Label: "needs work"},
			{Min: 40, Label: "developing"},
			{Min: 60, Label: "solid"},
			{Min: 75, Label: "strong"},
			{Min: 90, Label: "excellent"},
		},
	}
}

// ActivityV1 scores extracurricular narratives, which are shorter and judged
// on fewer axes than essays.
func ActivityV1() Rubric {
	return Rubric{
		Version: ActivityVersion,
		Scale:   10,
		Dimensions: []Dimension{
			{
				ID: "initiative", DisplayName: "Initiative", Weight: 0.4,
				MinScore: 0, MaxScore: 10,
				Anchors: []Anchor{
					{Score: 3, Description: "Participated in an existing program"},
					{Score: 7, Description: "Took on responsibility beyond the assigned role"},
					{Score: 9, Description: "Started or substantially reshaped the activity"},
				},
			},
			{
				ID: "commitment", DisplayName: "Commitment", Weight: 0.3,
				MinScore: 0, MaxScore: 10,
				Anchors: []Anchor{
					{Score: 3, Description: "Brief or one-off involvement"},
					{Score: 7, Description: "Sustained over a year with growing depth"},
					{Score: 9, Description: "Multi-year dedication with visible progression"},
				},
			},
			{
				ID: "outcome", DisplayName: "Outcome", Weight: 0.3,
				MinScore: 0, MaxScore: 10,
				Anchors: []Anchor{
					{Score: 3, Description: "No stated result"},
					{Score: 7, Description: "Concrete result for the group or community"},
					{Score: 9, Description: "Measured, verifiable result the writer drove"},
				},
			},
		},
		Rules: []Rule{
			{
				ID:       "thin-commitment-caps-outcome",
				Priority: 10,
				Condition: func(s map[string]float64) bool {
					return s["commitment"] < 3
				},
				Effect: Cap("outcome", 5),
			},
		},
		Bands: []Band{
			{Min: 0, Label: "needs work"},
			{Min: 45, Label: "developing"},
			{Min: 65, Label: "solid"},
			{Min: 85, Label: "excellent"},
		},
	}
}
