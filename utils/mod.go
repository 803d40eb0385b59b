package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Remove deletes the element at i, keeping the order of the rest. It reuses
// the backing array of slice.
func Remove[T any](slice []T, i int) []T {
	return append(slice[:i], slice[i+1:]...)
}
