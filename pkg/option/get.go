package option

// Get looks up key in a map wrapped by o. It returns Some of the mapped
// value when o is Some and the key exists (None when the mapped value
// itself is a nil sentinel), and None otherwise. A missing key never
// fails.
func Get[K comparable, V any](o Option[map[K]V], key K) Option[V] {
	if !o.isSome {
		return None[V]()
	}
	if v, ok := o.val[key]; ok {
		return Maybe(v)
	}
	return None[V]()
}

// GetOr is Get with a fallback: when o is None or the key is missing,
// the result degrades to Maybe(def) instead of None.
func GetOr[K comparable, V any](o Option[map[K]V], key K, def V) Option[V] {
	if !o.isSome {
		return Maybe(def)
	}
	if v, ok := o.val[key]; ok {
		return Maybe(v)
	}
	return Maybe(def)
}
