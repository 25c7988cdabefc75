package configs

import "errors"

// First returns the first definition of path decoded as T, or T's zero
// value when no file defines it. Load and decode failures are configuration
// bugs and panic.
func First[T any](loader Loader, path string) T {
	var value T
	err := loader.AssignFirst(path, &value)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return value
}
