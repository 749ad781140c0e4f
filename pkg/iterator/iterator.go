package iterator

import "iter"

// Collect drains it into a slice, which is never nil.
func Collect[T any](it iter.Seq[T]) []T {
	elems := make([]T, 0)
	for elem := range it {
		elems = append(elems, elem)
	}
	return elems
}

// Collect2 drains it into two slices of equal length, such as the tokens
// and errors of a scan.
func Collect2[K, V any](it iter.Seq2[K, V]) ([]K, []V) {
	keys := make([]K, 0)
	values := make([]V, 0)
	for k, v := range it {
		keys = append(keys, k)
		values = append(values, v)
	}
	return keys, values
}
