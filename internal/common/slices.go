package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// Clone returns a copy of s that shares no backing array with it.
// A nil or empty input yields an empty, non-nil slice.
func Clone[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	copy(out, s)

	return out
}
