package vars

// FirstNonZero returns the first value that differs from T's zero value,
// or the zero value when none does.
func FirstNonZero[T comparable](values ...T) (zero T) {
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return
}
