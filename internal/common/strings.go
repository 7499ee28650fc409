package common

// UnknownStr is the fallback String() value for out-of-range enum values.
const UnknownStr = "unknown"

// FirstNonEmpty returns the first non-empty string, or "" if all are empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
