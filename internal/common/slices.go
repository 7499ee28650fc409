package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Map applies fn to every element and returns the results in order.
func Map[S ~[]E, E, R any](s S, fn func(E) R) []R {
	result := make([]R, len(s))
	for i, e := range s {
		result[i] = fn(e)
	}

	return result
}
