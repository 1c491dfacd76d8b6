package slice

func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Compare returns the number of positions in which both slices differ.
// It returns -1 if they have different lengths.
func Compare[T comparable](s1 []T, s2 []T) int {
	if len(s1) != len(s2) {
		return -1
	}
	differences := 0
	for i := 0; i < len(s1); i++ {
		if s1[i] != s2[i] {
			differences++
		}
	}
	return differences
}

// Unique returns the elements of s in order of their first occurrence
func Unique[T comparable](s []T) []T {
	seen := make(map[T]bool, len(s))
	unique := make([]T, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	return unique
}
