// Package set provides a generic hash set.
package set

// Set holds a set of comparable values.
type Set[T comparable] map[T]struct{}

// New creates an empty set.
func New[T comparable]() Set[T] {
	return make(Set[T])
}

// Add inserts the value.
func (s Set[T]) Add(t T) {
	s[t] = struct{}{}
}

// Has reports whether the value is in the set.
func (s Set[T]) Has(t T) bool {
	_, ok := s[t]
	return ok
}
