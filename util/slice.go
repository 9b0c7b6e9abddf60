package util

// IndexOf returns the index of the first occurrence of v in s, or -1
func IndexOf[T comparable](s []T, v T) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}

	return -1
}

// Unique returns the elements of s in order of first appearance, dropping duplicates and elements for which
// skip returns true. skip may be nil.
func Unique[T comparable](s []T, skip func(T) bool) []T {
	if len(s) == 0 {
		return nil
	}

	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		if skip != nil && skip(v) {
			continue
		}
		out = append(out, v)
	}

	return out
}

// Set returns a lookup set holding the elements of s
func Set[T comparable](s ...[]T) map[T]struct{} {
	set := map[T]struct{}{}
	for _, part := range s {
		for _, v := range part {
			set[v] = struct{}{}
		}
	}

	return set
}
