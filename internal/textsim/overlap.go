package textsim

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMinOverlapLength is the smallest shared phrase (in characters)
	// worth reporting.
	DefaultMinOverlapLength = 15

	// DefaultFuzzyThreshold is the word-coverage ratio at which a claim is
	// considered present in a text.
	DefaultFuzzyThreshold = 0.6

	minOverlapGram = 3
	maxOverlapGram = 8
)

// ExtractOverlap collects word n-grams (sizes 3..8 over normalized text)
// that appear verbatim in both fragments and are at least minLength
// characters long. minLength <= 0 selects DefaultMinOverlapLength. The
// result is de-duplicated and ordered longest phrase first; ties keep
// discovery order.
func ExtractOverlap(a, b string, minLength int) []string {
	if minLength <= 0 {
		minLength = DefaultMinOverlapLength
	}
	ta := Tokenize(a)
	tb := Tokenize(b)

	seen := map[string]struct{}{}
	out := []string{}
	for n := minOverlapGram; n <= maxOverlapGram; n++ {
		bset := ngramSet(tb, n)
		if len(bset) == 0 {
			break
		}
		for _, g := range ngrams(ta, n) {
			if utf8.RuneCountInString(g) < minLength {
				continue
			}
			if _, ok := bset[g]; !ok {
				continue
			}
			if _, dup := seen[g]; dup {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) > utf8.RuneCountInString(out[j])
	})
	return out
}

// FuzzyContains reports whether the normalized text contains the normalized
// claim exactly, or whether at least threshold of the claim's words occur in
// the text. threshold <= 0 selects DefaultFuzzyThreshold. An empty claim is
// never contained.
func FuzzyContains(claim, text string, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	nc, nt := Normalize(claim), Normalize(text)
	if nc == "" {
		return false
	}
	if strings.Contains(nt, nc) {
		return true
	}
	return coverage(strings.Fields(nc), strings.Fields(nt)) >= threshold
}

// Coverage returns the fraction of the claim's words present in the text's
// word set, with an exact normalized substring match counting as 1. Empty
// claims score 0.
func Coverage(claim, text string) float64 {
	nc, nt := Normalize(claim), Normalize(text)
	if nc == "" {
		return 0
	}
	if strings.Contains(nt, nc) {
		return 1
	}
	return coverage(strings.Fields(nc), strings.Fields(nt))
}

func coverage(claimWords, textWords []string) float64 {
	if len(claimWords) == 0 {
		return 0
	}
	set := toSet(textWords)
	hits := 0
	for _, w := range claimWords {
		if _, ok := set[w]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(claimWords))
}

func ngrams(tokens []string, n int) []string {
	if len(tokens) < n {
		return nil
	}
	out := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+n], " "))
	}
	return out
}

func ngramSet(tokens []string, n int) map[string]struct{} {
	grams := ngrams(tokens, n)
	m := make(map[string]struct{}, len(grams))
	for _, g := range grams {
		m[g] = struct{}{}
	}
	return m
}
