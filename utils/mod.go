package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// CountFunc returns how many elements of slice satisfy match.
func CountFunc[T any](slice []T, match func(T) bool) int {
	count := 0
	for _, v := range slice {
		if match(v) {
			count++
		}
	}
	return count
}
