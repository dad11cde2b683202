package textsim

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

const longEssayA = "Over the last three summers I volunteered at the county food bank, " +
	"organizing donation drives and building a small inventory tracker that cut " +
	"sorting time for the volunteer shifts nearly in half."

const longEssayB = "My robotics team spent the season designing a lift mechanism, " +
	"testing gear ratios late into the evening and documenting every failure so the " +
	"younger members could learn from our mistakes next year."

func TestCompareReflexive(t *testing.T) {
	cases := []string{
		"the cat sat",
		longEssayA,
		longEssayB,
		"a",
	}
	for _, c := range cases {
		res := Compare(c, c)
		if math.Abs(res.Score-1.0) > 1e-6 {
			t.Errorf("Compare(%.20q, same) score = %v, want 1.0", c, res.Score)
		}
		if res.Severity != SeverityCritical {
			t.Errorf("Compare(%.20q, same) severity = %v, want critical", c, res.Severity)
		}
	}
}

func TestCompareSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"the cat sat", "the cat ran"},
		{longEssayA, longEssayB},
		{"", longEssayA},
		{longEssayA, longEssayA + " extra words at the end of this text"},
	}
	for _, p := range pairs {
		ab := Compare(p[0], p[1])
		ba := Compare(p[1], p[0])
		if math.Abs(ab.Score-ba.Score) > 1e-9 {
			t.Errorf("Compare not symmetric: %v vs %v", ab.Score, ba.Score)
		}
	}
}

func TestCompareEmpty(t *testing.T) {
	if res := Compare("", ""); res.Score != 0 || res.Severity != SeverityNone {
		t.Errorf("Compare(empty, empty) = %+v, want score 0 severity none", res)
	}
	if res := Compare("", longEssayA); res.Score != 0 || res.Severity != SeverityNone {
		t.Errorf("Compare(empty, long) = %+v, want score 0 severity none", res)
	}
	if res := Compare("...!!!", "???"); res.Score != 0 {
		t.Errorf("punctuation-only input scored %v, want 0", res.Score)
	}
}

func TestCompareShortJaccard(t *testing.T) {
	res := Compare("the cat sat", "the cat ran")
	if math.Abs(res.Score-0.5) > 1e-9 {
		t.Fatalf("score = %v, want 0.5", res.Score)
	}
	if res.Severity != SeverityMajor {
		t.Fatalf("severity = %v, want major", res.Severity)
	}
}

func TestCompareLongDistinct(t *testing.T) {
	res := Compare(longEssayA, longEssayB)
	if res.Score < 0 || res.Score > 0.3 {
		t.Fatalf("unrelated long texts scored %v, want low (<0.3)", res.Score)
	}
}

func TestCompareLongNearDuplicate(t *testing.T) {
	modified := strings.Replace(longEssayA, "county food bank", "city food pantry", 1)
	res := Compare(longEssayA, modified)
	if res.Score < 0.7 {
		t.Fatalf("near-duplicate scored %v, want >= 0.7", res.Score)
	}
	if res.Severity != SeverityCritical {
		t.Fatalf("severity = %v, want critical", res.Severity)
	}
}

// A term dropped from one document's top-term set must not contribute that
// document's weight just because the other document kept it.
func TestCompareTruncatesEachVectorSeparately(t *testing.T) {
	// "shared" dominates A but is the lightest of B's 56 terms, so B's
	// 50-term vector drops it. It is the only word the texts have in common.
	a := strings.Repeat("shared ", 5) +
		"alpha bravo charlie delta echo foxtrot golf hotel india juliet"
	var b strings.Builder
	b.WriteString("shared ")
	for i := 0; i < 55; i++ {
		b.WriteString(strings.Repeat(fmt.Sprintf("term%02d ", i), 3))
	}
	res := Compare(a, b.String())
	if res.Score != 0 {
		t.Fatalf("score = %v, want 0 once both vectors are truncated", res.Score)
	}
}

func TestSeverityFor(t *testing.T) {
	cases := []struct {
		score float64
		want  Severity
	}{
		{0, SeverityNone},
		{0.29, SeverityNone},
		{0.3, SeverityMinor},
		{0.49, SeverityMinor},
		{0.5, SeverityMajor},
		{0.69, SeverityMajor},
		{0.7, SeverityCritical},
		{1, SeverityCritical},
	}
	for _, c := range cases {
		if got := SeverityFor(c.score); got != c.want {
			t.Errorf("SeverityFor(%v) = %v, want %v", c.score, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hello, World!", "hello world"},
		{"  lots   of\tspace ", "lots of space"},
		{"don't-stop", "don t stop"},
		{"", ""},
		{"...", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
