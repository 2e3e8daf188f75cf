package option

import (
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// Compare orders two Options: None sorts strictly before any Some, two
// None values are equal, and two Some values delegate to the payload
// ordering. The result is -1, 0 or 1.
func Compare[T constraints.Ordered](a, b Option[T]) int {
	switch {
	case a.isSome && b.isSome:
		return cmpOrdered(a.val, b.val)
	case a.isSome:
		return 1
	case b.isSome:
		return -1
	default:
		return 0
	}
}

// CompareFunc is Compare with a caller-supplied payload comparator.
func CompareFunc[T any](a, b Option[T], cmp func(T, T) int) int {
	switch {
	case a.isSome && b.isSome:
		return cmp(a.val, b.val)
	case a.isSome:
		return 1
	case b.isSome:
		return -1
	default:
		return 0
	}
}

func Less[T constraints.Ordered](a, b Option[T]) bool {
	return Compare(a, b) < 0
}

var hashSeed = maphash.MakeSeed()

// Hash returns a hash over the variant flag and payload, stable for the
// lifetime of the process. Equal Options hash equally; None always
// hashes to the same value.
func Hash[T comparable](o Option[T]) uint64 {
	return maphash.Comparable(hashSeed, o)
}

func cmpOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
