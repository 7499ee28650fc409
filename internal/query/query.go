package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cast"

	"json2reqif/internal/common"
)

// Match is a single query result.
type Match struct {
	// Path is the normalized JSONPath of the matched value, relative to the
	// node the query was evaluated against.
	Path string
	// Value is the matched value (map[string]any, []any or a scalar).
	Value any
}

// Evaluator compiles and caches JSONPath expressions.
// Not safe for concurrent use.
type Evaluator struct {
	cache map[string]jp.Expr
}

// NewEvaluator creates an evaluator with an empty expression cache.
func NewEvaluator() *Evaluator {
	return &Evaluator{cache: make(map[string]jp.Expr)}
}

// Compile parses a query, caching the result.
func (e *Evaluator) Compile(q string) (jp.Expr, error) {
	if x, ok := e.cache[q]; ok {
		return x, nil
	}

	x, err := Compile(q)
	if err != nil {
		return nil, err
	}

	e.cache[q] = x

	return x, nil
}

// Evaluate runs q against node and returns the matches in document order.
// Array elements keep their index order; members of an object come in
// lexicographic key order since decoded objects carry none. Descendants follow
// their parent. No matches is not an error.
func (e *Evaluator) Evaluate(q string, node any) ([]Match, error) {
	x, err := e.Compile(q)
	if err != nil {
		return nil, err
	}

	if isRoot(x) {
		return []Match{{Path: "$", Value: node}}, nil
	}

	locs := x.Locate(node, 0)
	slices.SortStableFunc(locs, compareLocations)

	matches := make([]Match, 0, len(locs))

	for _, loc := range locs {
		matches = append(matches, Match{Path: loc.String(), Value: loc.First(node)})
	}

	return matches, nil
}

// compareLocations orders two normalized paths by position in the document.
func compareLocations(a, b jp.Expr) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareFrags(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

func compareFrags(a, b jp.Frag) int {
	switch fa := a.(type) {
	case jp.Nth:
		if fb, ok := b.(jp.Nth); ok {
			return cmp.Compare(fa, fb)
		}
	case jp.Child:
		if fb, ok := b.(jp.Child); ok {
			return cmp.Compare(fa, fb)
		}
	}

	return 0
}

// isRoot reports whether x selects the evaluation node itself ("$" or "@").
func isRoot(x jp.Expr) bool {
	if len(x) != 1 {
		return false
	}

	switch x[0].(type) {
	case jp.Root, jp.At:
		return true
	default:
		return false
	}
}

// Compile parses a JSONPath expression without caching.
func Compile(q string) (jp.Expr, error) {
	if strings.TrimSpace(q) == "" {
		return nil, errors.New("empty query")
	}

	x, err := jp.ParseString(q)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid query %q", q)
	}

	return x, nil
}

// Strings converts match values to strings. Nil values become "".
func Strings(matches []Match) []string {
	return common.Map(matches, func(m Match) string { return cast.ToString(m.Value) })
}

// Join concatenates the string form of all match values with a single space.
func Join(matches []Match) string {
	return strings.Join(Strings(matches), " ")
}

// First returns the string form of the first match and true, or "" and false.
func First(matches []Match) (string, bool) {
	m, ok := common.First(matches)
	if !ok {
		return "", false
	}

	return cast.ToString(m.Value), true
}

// ParseDocument decodes a JSON document into the generic tree queries run on.
func ParseDocument(data []byte) (any, error) {
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON document")
	}

	return doc, nil
}
