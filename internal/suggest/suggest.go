package suggest

import (
	"cmp"
	"fmt"
	"slices"
)

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a known name scored against the looked-up one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is ordered by descending score.
type CandidateList []Candidate

// Rank scores every candidate against word. Ties keep the input order.
func Rank(word string, candidates []string) CandidateList {
	norm := Normalize(word)

	list := make(CandidateList, 0, len(candidates))
	for _, c := range candidates {
		list = append(list, Candidate{Name: c, Score: Similarity(norm, Normalize(c))})
	}

	slices.SortStableFunc(list, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return list
}

// Best returns the highest scored candidate, or nil for an empty list.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	i := slices.IndexFunc(c, func(cand Candidate) bool { return cand.Score < threshold })
	if i < 0 {
		return c
	}

	return c[:i]
}

// Closest returns the best candidate scoring at least DefaultThreshold.
// An exact match (after normalization) always wins.
func Closest(word string, candidates []string) (string, bool) {
	best := Rank(word, candidates).AboveThreshold(DefaultThreshold).Best()
	if best == nil {
		return "", false
	}

	return best.Name, true
}

// Hint formats a "did you mean" suffix, or "" when nothing is close.
func Hint(word string, candidates []string) string {
	name, ok := Closest(word, candidates)
	if !ok {
		return ""
	}

	return fmt.Sprintf("did you mean %q?", name)
}
