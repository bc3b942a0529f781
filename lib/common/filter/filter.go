// Package filter provides composable predicates over book entities.
package filter

// A Filter reports whether a value should be kept.
type Filter[T any] func(T) bool

// Combine chains filters. The combined filter passes values that pass
// every constituent filter.
func Combine[T any](fs ...Filter[T]) Filter[T] {
	return func(t T) bool {
		for _, f := range fs {
			if !f(t) {
				return false
			}
		}
		return true
	}
}
