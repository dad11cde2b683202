package textsim

import (
	"testing"
	"unicode/utf8"
)

func TestExtractOverlapFindsSharedPhrases(t *testing.T) {
	a := "I organized the annual charity bake sale and tracked every donation in a spreadsheet."
	b := "Last spring I organized the annual charity bake sale with two friends from class."
	got := ExtractOverlap(a, b, 15)
	if len(got) == 0 {
		t.Fatal("expected shared phrases, got none")
	}
	for _, g := range got {
		if utf8.RuneCountInString(g) < 15 {
			t.Errorf("phrase %q shorter than minLength", g)
		}
	}
	for i := 1; i < len(got); i++ {
		if utf8.RuneCountInString(got[i]) > utf8.RuneCountInString(got[i-1]) {
			t.Errorf("phrases not sorted longest-first: %q after %q", got[i], got[i-1])
		}
	}
	want := "i organized the annual charity bake sale"
	if got[0] != want {
		t.Errorf("longest overlap = %q, want %q", got[0], want)
	}
}

func TestExtractOverlapNoSharedPhrases(t *testing.T) {
	got := ExtractOverlap("completely different words here now", "nothing in common at all today", 15)
	if len(got) != 0 {
		t.Fatalf("expected no overlap, got %v", got)
	}
}

func TestExtractOverlapDegenerateInput(t *testing.T) {
	if got := ExtractOverlap("", "", 15); len(got) != 0 {
		t.Fatalf("empty inputs: got %v", got)
	}
	if got := ExtractOverlap("one two", "one two", 15); len(got) != 0 {
		t.Fatalf("inputs shorter than the smallest n-gram: got %v", got)
	}
}

func TestExtractOverlapDefaultMinLength(t *testing.T) {
	a := "we ran the event"
	b := "we ran the event"
	// "we ran the" is only 10 characters; below the default of 15.
	if got := ExtractOverlap(a, b, 0); len(got) != 0 {
		t.Fatalf("short shared grams should be filtered by default minLength, got %v", got)
	}
}

func TestFuzzyContains(t *testing.T) {
	cases := []struct {
		claim, text string
		want        bool
	}{
		{"I founded the club", "I founded the robotics club in 2021", true},
		{"founded the robotics club", "In 2021 I founded the robotics club.", true},
		{"I invented time travel", "I founded the robotics club", false},
		{"", "anything at all", false},
		{"anything", "", false},
	}
	for _, c := range cases {
		if got := FuzzyContains(c.claim, c.text, 0); got != c.want {
			t.Errorf("FuzzyContains(%q, %q) = %v, want %v", c.claim, c.text, got, c.want)
		}
	}
}

func TestCoverage(t *testing.T) {
	// 3 of 4 claim words appear in the text.
	got := Coverage("I founded the club", "I founded the robotics team")
	if got != 0.75 {
		t.Fatalf("Coverage = %v, want 0.75", got)
	}
	if Coverage("", "text") != 0 {
		t.Fatal("empty claim should have zero coverage")
	}
	if Coverage("exact phrase here", "prefix exact phrase here suffix") != 1 {
		t.Fatal("substring match should have coverage 1")
	}
}
