package textsim

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Severity buckets a similarity score for duplicate/repetition flagging.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// Result is the outcome of comparing two text fragments.
type Result struct {
	Score    float64  `json:"score"`
	Severity Severity `json:"severity"`
}

const (
	// Texts shorter than this (normalized characters) are compared by
	// word-set overlap instead of term vectors.
	shortTextLimit = 50

	// Term vectors keep only the heaviest terms per document.
	maxVectorTerms = 50
)

// Normalize lowercases, folds punctuation into whitespace, and collapses
// runs of whitespace to single spaces.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r), unicode.IsPunct(r):
			space = true
		default:
			if space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = false
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}

// Tokenize returns the normalized word sequence of s.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}

// Compare computes a 0..1 similarity between two fragments. Short fragments
// use word-set Jaccard overlap; longer ones use TF-IDF cosine similarity
// over a two-document corpus. Empty or degenerate input yields score 0,
// never an error.
func Compare(a, b string) Result {
	na, nb := Normalize(a), Normalize(b)
	var score float64
	if utf8.RuneCountInString(na) < shortTextLimit || utf8.RuneCountInString(nb) < shortTextLimit {
		score = jaccard(strings.Fields(na), strings.Fields(nb))
	} else {
		score = tfidfCosine(strings.Fields(na), strings.Fields(nb))
	}
	return Result{Score: score, Severity: SeverityFor(score)}
}

// SeverityFor maps a similarity score onto the fixed severity thresholds.
func SeverityFor(score float64) Severity {
	switch {
	case score >= 0.7:
		return SeverityCritical
	case score >= 0.5:
		return SeverityMajor
	case score >= 0.3:
		return SeverityMinor
	default:
		return SeverityNone
	}
}

func jaccard(a, b []string) float64 {
	sa := toSet(a)
	sb := toSet(b)
	union := len(sb)
	inter := 0
	for w := range sa {
		if _, ok := sb[w]; ok {
			inter++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// tfidfCosine treats each token slice as one document of a two-document
// corpus: weight(term) = tf * (ln(2/df)+1), df counted over the pair. Each
// vector keeps only its document's top maxVectorTerms terms; a term outside
// a document's kept set contributes zero to that vector even when the other
// document kept it.
func tfidfCosine(ta, tb []string) float64 {
	ca, cb := termCounts(ta), termCounts(tb)
	wa := tfidfWeights(ca, cb)
	wb := tfidfWeights(cb, ca)

	keptA := toSet(topTerms(wa, maxVectorTerms))
	keptB := toSet(topTerms(wb, maxVectorTerms))
	union := make(map[string]struct{}, len(keptA)+len(keptB))
	for t := range keptA {
		union[t] = struct{}{}
	}
	for t := range keptB {
		union[t] = struct{}{}
	}

	var dot, magA, magB float64
	for t := range union {
		var va, vb float64
		if _, ok := keptA[t]; ok {
			va = wa[t]
		}
		if _, ok := keptB[t]; ok {
			vb = wb[t]
		}
		dot += va * vb
		magA += va * va
		magB += vb * vb
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

func termCounts(tokens []string) map[string]int {
	m := make(map[string]int, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return m
}

func tfidfWeights(doc, other map[string]int) map[string]float64 {
	w := make(map[string]float64, len(doc))
	for term, tf := range doc {
		df := 1.0
		if _, ok := other[term]; ok {
			df = 2.0
		}
		// +1 floor keeps shared terms weighted, so identical documents
		// still produce cosine 1.
		w[term] = float64(tf) * (math.Log(2.0/df) + 1)
	}
	return w
}

func topTerms(w map[string]float64, limit int) []string {
	terms := make([]string, 0, len(w))
	for t := range w {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if w[terms[i]] != w[terms[j]] {
			return w[terms[i]] > w[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
