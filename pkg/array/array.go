package array

// Returns the index of the first element that is true on the condition.
// Otherwise, returns -1.
func Some[S ~[]E, E any](arr S, cond func(E) bool) int {
	for i, elem := range arr {
		if cond(elem) {
			return i
		}
	}
	return -1
}

// Returns true if the array contains the given value. Used for small
// fixed sets such as token types and whitespace runes.
func Contains[S ~[]E, E comparable](arr S, value E) bool {
	return Some(arr, func(elem E) bool {
		return elem == value
	}) > -1
}
