package utils

// Pair carries a key together with its value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func GetZero[T any]() T {
	var result T
	return result
}
