// Package dict provides helpers over the GUID-keyed maps the book is
// built from.
package dict

import (
	"github.com/rhaller/gncbook/lib/common/compare"
)

// Values returns the values of the map in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	res := make([]V, 0, len(m))
	for _, v := range m {
		res = append(res, v)
	}
	return res
}

// SortedValues returns the values of the map in the order given by the
// comparator. Map iteration is unordered, so every accessor that hands
// out entities sorts them first.
func SortedValues[K comparable, V any](m map[K]V, c compare.Compare[V]) []V {
	res := Values(m)
	compare.Sort(res, c)
	return res
}
