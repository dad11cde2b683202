package llm

import (
	"strings"
	"testing"

	"github.com/admitlens/admitlens/internal/rubric"
)

func testRubric() rubric.Rubric {
	return rubric.Rubric{
		Version: "parse.v1",
		Scale:   10,
		Dimensions: []rubric.Dimension{
			{ID: "a", DisplayName: "A", Weight: 1, MinScore: 0, MaxScore: 10},
			{ID: "b", DisplayName: "B", Weight: 1, MinScore: 0, MaxScore: 10},
		},
		Bands: []rubric.Band{{Min: 0, Label: "low"}},
	}
}

func TestParseScoreEntriesValid(t *testing.T) {
	raw := []byte(`{"scores":[
		{"dimension_id":"a","raw_score":7.5,"evidence":["line one"],"note":"good detail"},
		{"dimension_id":"b","raw_score":4}
	]}`)
	got, err := ParseScoreEntries(raw, testRubric())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got["a"].RawScore != 7.5 || got["a"].Note != "good detail" {
		t.Fatalf("entry a = %+v", got["a"])
	}
	if len(got["a"].Evidence) != 1 || got["a"].Evidence[0] != "line one" {
		t.Fatalf("evidence a = %v", got["a"].Evidence)
	}
}

func TestParseScoreEntriesRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string // substring expected in the error
	}{
		{"bad json", `{"scores":`, "model payload"},
		{"unknown field", `{"scores":[],"extra":1}`, "model payload"},
		{"unknown dimension", `{"scores":[{"dimension_id":"a","raw_score":5},{"dimension_id":"b","raw_score":5},{"dimension_id":"z","raw_score":5}]}`, `unknown dimension "z"`},
		{"duplicate dimension", `{"scores":[{"dimension_id":"a","raw_score":5},{"dimension_id":"a","raw_score":6}]}`, `duplicate dimension "a"`},
		{"missing dimension", `{"scores":[{"dimension_id":"a","raw_score":5}]}`, `missing dimension "b"`},
		{"missing id", `{"scores":[{"raw_score":5}]}`, "missing dimension_id"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseScoreEntries([]byte(c.raw), testRubric())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not contain %q", err, c.want)
			}
		})
	}
}
