package result

import (
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// Compare orders two Results: within the same variant it delegates to
// the payload ordering; across variants Ok sorts strictly before Err
// regardless of payload. The cross-variant order is an arbitrary but
// fixed tie-break kept stable for compatibility. The result is -1, 0
// or 1.
func Compare[T, E constraints.Ordered](a, b Result[T, E]) int {
	switch {
	case a.isOk && b.isOk:
		return cmpOrdered(a.val, b.val)
	case !a.isOk && !b.isOk:
		return cmpOrdered(a.err, b.err)
	case a.isOk:
		return -1
	default:
		return 1
	}
}

// CompareFunc is Compare with caller-supplied comparators for each
// channel.
func CompareFunc[T, E any](a, b Result[T, E], cmpOk func(T, T) int, cmpErr func(E, E) int) int {
	switch {
	case a.isOk && b.isOk:
		return cmpOk(a.val, b.val)
	case !a.isOk && !b.isOk:
		return cmpErr(a.err, b.err)
	case a.isOk:
		return -1
	default:
		return 1
	}
}

func Less[T, E constraints.Ordered](a, b Result[T, E]) bool {
	return Compare(a, b) < 0
}

var hashSeed = maphash.MakeSeed()

// Hash returns a hash over the variant flag and both channels, stable
// for the lifetime of the process. Equal Results hash equally.
func Hash[T, E comparable](r Result[T, E]) uint64 {
	return maphash.Comparable(hashSeed, r)
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
